package errors

import "fmt"

type ErrorCode string

const (
	// Generic
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrCreateFailed       ErrorCode = "CREATE_FAILED"
	ErrGetFailed          ErrorCode = "GET_FAILED"
	ErrUpdateFailed       ErrorCode = "UPDATE_FAILED"
	ErrDeleteFailed       ErrorCode = "DELETE_FAILED"

	// Auth
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrForbidden                  ErrorCode = "FORBIDDEN"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Scheduling validation. These are user-recoverable: pick another cell,
	// wait for the demo date, and so on. Never retried automatically.
	ErrNotDraggable ErrorCode = "NOT_DRAGGABLE"
	ErrSlotOccupied ErrorCode = "SLOT_OCCUPIED"
	ErrTimeConflict ErrorCode = "TIME_CONFLICT"

	// ErrGridConflict marks a grid-invariant violation (two live requests in
	// one team/slot cell). It indicates a bug or an unreconciled concurrent
	// write, not a user mistake, and is surfaced distinctly from the
	// validation codes above.
	ErrGridConflict ErrorCode = "GRID_CONFLICT"

	// ErrVersionConflict is returned when an upsert loses an
	// optimistic-concurrency check against the stored row version.
	ErrVersionConflict ErrorCode = "VERSION_CONFLICT"

	// ErrPersistFailed wraps a remote-store failure after a placement was
	// already accepted by the business rules. Callers retry the persist, not
	// the validation.
	ErrPersistFailed ErrorCode = "PERSIST_FAILED"
)

// AppError is the application error carried between services and controllers.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a plain AppError without a wrapped cause.
func New(code ErrorCode, message string) *AppError {
	return NewAppError(code, message, nil)
}

// IsCode reports whether err is an *AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	ae, ok := err.(*AppError)
	return ok && ae.Code == code
}
