package dto

// ErrorType tags the error envelope so clients can branch without parsing
// the detail string.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeAuth       ErrorType = "auth_error"
	ErrorTypeConnection ErrorType = "connection_error"
	ErrorTypeTimeout    ErrorType = "timeout_error"
	ErrorTypeUpstream   ErrorType = "upstream_error"
	ErrorTypeInternal   ErrorType = "internal_error"
)

// ErrorResponse is the standard error envelope: a human-readable detail
// string plus a machine-readable error_type tag.
type ErrorResponse struct {
	Detail    string    `json:"detail"`
	ErrorType ErrorType `json:"error_type,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(detail string, errorType ErrorType) *ErrorResponse {
	return &ErrorResponse{
		Detail:    detail,
		ErrorType: errorType,
	}
}
