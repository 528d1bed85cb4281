package services

// NormalizeBoolean maps the form's answer literals onto the string booleans
// the DB service stores: "Yes" becomes "true", everything else "false".
func NormalizeBoolean(value string) string {
	if value == "Yes" {
		return "true"
	}
	return "false"
}

// normalizeForm returns a copy of the form with every Yes/No answer rewritten
// as a string boolean. Non-answer values pass through untouched.
func normalizeForm(form map[string]string) map[string]string {
	normalized := make(map[string]string, len(form))
	for key, value := range form {
		if value == "Yes" || value == "No" {
			normalized[key] = NormalizeBoolean(value)
			continue
		}
		normalized[key] = value
	}
	return normalized
}
