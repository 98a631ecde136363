package ring

// ValidationError reports a parameter that failed validation. Message is
// meant to be shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}
