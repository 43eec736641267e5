package errors

import (
	"net/http"

	"lazycook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business code, so a WithDetails copy still
// compares equal to its sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are German, matching the
// rest of the product surface.
var (
	// Account-related errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email schon in einem Konto registriert",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Für diese Email ist kein Konto hinterlegt",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Falsches Passwort",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"Registrierung fehlgeschlagen",
		"",
	)

	ErrProfileNameTaken = NewBaseError(
		http.StatusConflict,
		"PROFILE_NAME_TAKEN",
		"Dieser Anzeigename ist bereits vergeben",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Nutzerprofil nicht gefunden",
		"",
	)

	// Recipe bookkeeping errors
	ErrAuthorNotFound = NewBaseError(
		http.StatusNotFound,
		"AUTHOR_NOT_FOUND",
		"Verfasser nicht gefunden",
		"",
	)

	ErrAuthorNameTaken = NewBaseError(
		http.StatusConflict,
		"AUTHOR_NAME_TAKEN",
		"Verfasser mit diesem Namen existiert bereits",
		"",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Rezept nicht gefunden",
		"",
	)

	ErrRecipeNameTaken = NewBaseError(
		http.StatusConflict,
		"RECIPE_NAME_TAKEN",
		"Rezept mit diesem Namen existiert bereits",
		"",
	)

	ErrIngredientNotFound = NewBaseError(
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"Zutat nicht gefunden",
		"",
	)

	ErrIngredientNameTaken = NewBaseError(
		http.StatusConflict,
		"INGREDIENT_NAME_TAKEN",
		"Zutat mit diesem Namen existiert bereits",
		"",
	)

	ErrIngredientAlreadyInRecipe = NewBaseError(
		http.StatusConflict,
		"INGREDIENT_ALREADY_IN_RECIPE",
		"Zutat ist dem Rezept bereits zugeordnet",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Eingabedaten sind ungültig",
		"",
	)

	// Generic storage/integrity failures; details stay in the logs.
	ErrDatabaseFailure = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_FAILURE",
		"Interner Fehler",
		"",
	)

	ErrIntegrityViolation = NewBaseError(
		http.StatusInternalServerError,
		"INTEGRITY_VIOLATION",
		"Interner Fehler",
		"",
	)

	ErrNotImplemented = NewBaseError(
		http.StatusNotImplemented,
		"NOT_IMPLEMENTED",
		"Diese Funktion ist noch nicht verfügbar",
		"",
	)
)

// NewDatabaseExecuteError wraps a raw storage error into the generic
// database failure so engine-specific detail never crosses the boundary.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseFailure.WithDetails(err.Error()), message)
}
