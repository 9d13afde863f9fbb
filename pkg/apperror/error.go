package apperror

import "net/http"

// FieldViolation describes a single failed validation rule on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code       int              `json:"code"`
	Message    string           `json:"message"`
	Violations []FieldViolation `json:"violations,omitempty"`
	Err        error            `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers malformed request bodies (parse failures).
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation carries the full set of field violations from one validation pass.
func Validation(message string, violations []FieldViolation) *AppError {
	return &AppError{
		Code:       http.StatusBadRequest,
		Message:    message,
		Violations: violations,
	}
}

// Config marks a deployment misconfiguration. Fatal to the request, not the process.
func Config(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}

// Unavailable marks a temporarily-unavailable downstream dependency, such as
// an unreachable mail relay.
func Unavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Something went wrong. Please try again later.", err)
}
