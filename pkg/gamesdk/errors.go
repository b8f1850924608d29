package gamesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared between server and client.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeDuplicateUsername  = "duplicate_username"
	ErrorCodeUserNotFound       = "user_not_found"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error envelope used both by HTTP handlers (to write
// responses) and by the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`

	// Details carries field-specific validation messages
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Details:          e.Details,
	})
}

// WithDetails returns a copy of the error carrying field-level details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	clone := *e
	clone.Details = details
	return &clone
}

var (
	// ErrInvalidRequest is returned for malformed request bodies or
	// parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned when login fails. Deliberately the
	// same for unknown usernames and wrong passwords.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	// ErrInvalidToken is returned for missing or unverifiable session tokens.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or missing session token",
	}

	// ErrDuplicateUsername is returned when registering an already-taken
	// username.
	ErrDuplicateUsername = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateUsername,
		Description: "username already exists",
	}

	// ErrUserNotFound is returned when the addressed user does not exist.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUserNotFound,
		Description: "user not found",
	}

	// ErrValidation is returned when required fields are missing or
	// malformed. Use WithDetails to name the offending fields.
	ErrValidation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "one or more fields failed validation",
	}

	// ErrServerError is returned for storage failures and other internal
	// conditions. The underlying cause is logged, never sent to the client.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// ParseErrorResponse converts a decoded ErrorResponse plus status code back
// into an APIError on the client side.
func ParseErrorResponse(statusCode int, body ErrorResponse) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
		Details:     body.Details,
	}
}
