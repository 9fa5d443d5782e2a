package domain

import "errors"

var (
	ErrDebtNotFound        = errors.New("debt not found")
	ErrImportNotFound      = errors.New("import not found")
	ErrBalanceConflict     = errors.New("outstanding balance changed since read")
	ErrDuplicateReference  = errors.New("payment reference already exists")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrInvalidImportFormat = errors.New("invalid import file format")
)

// ValidationError marks malformed or out-of-range input. The caller must
// correct the input; it is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError marks an operation the acting identity has no right to
// perform.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidStateError marks an operation that is not legal in the entity's
// current lifecycle state, such as paying a settled debt.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsAuthorization(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}

func IsInvalidState(err error) bool {
	var se *InvalidStateError
	return errors.As(err, &se)
}
