package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so responses never leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when a user lookup fails.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post lookup fails.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotPostAuthor is returned when a user tries to modify a post they
	// did not create.
	ErrNotPostAuthor = errors.New("not authorized to modify this post")
)

// ValidationError carries a user-facing message and optional per-field
// details for 400 responses.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a single-message validation error.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldErrors creates a validation error with per-field details.
func NewFieldErrors(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Validation failed", Fields: fields}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: ve.Message, Details: ve.Fields}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPostNotFound):
		return &HTTPError{StatusCode: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, ErrNotPostAuthor):
		return &HTTPError{StatusCode: http.StatusForbidden, Message: err.Error()}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}
