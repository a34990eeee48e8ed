package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. Handlers
// map these onto HTTP statuses; infra errors are marked with one of them
// before crossing the usecase boundary.
//
// "Not authorized" and "truly absent" share the same not-found sentinels on
// purpose: an unauthorized caller must not learn that the resource exists.
var (
	// Lookup errors
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("request not found")

	// Booking errors
	ErrItemUnavailable       = errors.New("item is unavailable")
	ErrOwnItemBooking        = errors.New("cannot book own item")
	ErrInvalidPeriod         = errors.New("invalid booking period")
	ErrBookingAlreadyDecided = errors.New("booking is not in available status")
	ErrUnknownState          = errors.New("unknown state")

	// Comment errors
	ErrCommentNotAllowed = errors.New("user has no completed booking for item")
	ErrEmptyComment      = errors.New("comment text cannot be empty")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Conflict errors
	ErrEmailConflict   = errors.New("email already in use")
	ErrBookingConflict = errors.New("booking conflict")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
