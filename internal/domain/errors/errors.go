package errors

import (
	"net/http"

	"chaintrace/internal/errors"
)

// AppError is an error that knows how it is rendered to API clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail
}

// BaseError is the value implementation of AppError.
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage adds a stack and context while keeping errors.Is matching.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches any BaseError with the same business code, so values produced by
// WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid request data", "")
	ErrInvalidAction    = NewBaseError(http.StatusBadRequest, "INVALID_ACTION", "Unknown or missing action", "")

	// Users and auth
	ErrUserNotFound        = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")
	ErrUserAlreadyExists   = NewBaseError(http.StatusBadRequest, "USER_ALREADY_EXISTS", "User already exists", "")
	ErrInvalidCredentials  = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", "")
	ErrRefreshTokenInvalid = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token", "")
	ErrUnauthorized        = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
	ErrPasswordHashFailed  = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed", "")
	ErrRoleNotAllowed      = NewBaseError(http.StatusForbidden, "ROLE_NOT_ALLOWED", "Role not allowed for this operation", "")

	// Listings
	ErrProductNotFound           = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")
	ErrMaterialNotFound          = NewBaseError(http.StatusNotFound, "MATERIAL_NOT_FOUND", "Raw material not found", "")
	ErrPaymentNotFound           = NewBaseError(http.StatusNotFound, "PAYMENT_NOT_FOUND", "Payment/Order not found for this material", "")
	ErrInsufficientAvailability  = NewBaseError(http.StatusConflict, "INSUFFICIENT_AVAILABILITY", "Requested quantity exceeds availability", "")
	ErrListingOwnershipViolation = NewBaseError(http.StatusForbidden, "OWNERSHIP_VIOLATION", "Only the listing owner can perform this action", "")

	// Purchases and tracking
	ErrPurchaseNotFound        = NewBaseError(http.StatusNotFound, "PURCHASE_NOT_FOUND", "Purchase not found", "")
	ErrDuplicateTransaction    = NewBaseError(http.StatusBadRequest, "DUPLICATE_TRANSACTION", "Transaction already processed.", "")
	ErrTransactionNotConfirmed = NewBaseError(http.StatusBadRequest, "TRANSACTION_NOT_CONFIRMED", "Transaction not confirmed on chain", "")
	ErrInvalidStatusTransition = NewBaseError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Status transition not allowed", "")
	ErrTrackingUpdateForbidden = NewBaseError(http.StatusForbidden, "TRACKING_UPDATE_FORBIDDEN", "Not allowed to update tracking for this order", "")
	ErrConcurrentUpdate        = NewBaseError(http.StatusConflict, "CONCURRENT_UPDATE", "Record was modified concurrently, retry the request", "")

	// General errors
	ErrForbidden       = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
	ErrConflict        = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict", "")
	ErrDatabaseExecute = NewBaseError(http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED", "Internal server error", "")
)

// causedError is a BaseError that also keeps the failure behind it for logs.
type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.BaseError.Error() + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// NewDatabaseExecuteError reports an unexpected persistence failure as a 500.
// details names the operation; the driver error only reaches the log.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &causedError{
		BaseError: ErrDatabaseExecute.WithDetails(details),
		cause:     err,
	}
}
