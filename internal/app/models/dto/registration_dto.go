package dto

// RegistrationRequest is the shared body of the POST /student, /teacher and
// /candidate endpoints. FormData holds the identity claim and profile
// fields; IDGeneration selects the dedup + synthesis path.
type RegistrationRequest struct {
	FormData     map[string]string `json:"form_data" binding:"required"`
	IDGeneration bool              `json:"id_generation"`
	AuthGroup    string            `json:"auth_group" binding:"required"`
}

// StudentRegistrationResponse is the result of POST /student.
type StudentRegistrationResponse struct {
	StudentID     string `json:"student_id"`
	AlreadyExists bool   `json:"already_exists"`
}

// TeacherRegistrationResponse is the result of POST /teacher.
type TeacherRegistrationResponse struct {
	TeacherID     string `json:"teacher_id"`
	AlreadyExists bool   `json:"already_exists"`
}

// CandidateRegistrationResponse is the result of POST /candidate.
type CandidateRegistrationResponse struct {
	CandidateID   string `json:"candidate_id"`
	AlreadyExists bool   `json:"already_exists"`
}

// VerificationResponse is the structured result of the verify endpoints.
type VerificationResponse struct {
	IsValid       bool   `json:"is_valid"`
	UserID        string `json:"user_id,omitempty"`
	DisplayID     string `json:"display_id,omitempty"`
	DisplayIDType string `json:"display_id_type,omitempty"`
}
