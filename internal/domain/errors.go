package domain

import "errors"

// Sentinel errors for the failure classes callers must be able to tell
// apart. Services wrap these with context via fmt.Errorf("...: %w", err);
// handlers map them to HTTP statuses with errors.Is.
var (
	// Validation: bad input, rejected before any write.
	ErrValidation = errors.New("validation error")

	// Not found: a referenced id does not exist.
	ErrCarNotFound      = errors.New("car not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRentalNotFound   = errors.New("rental not found")
	ErrPhotoNotFound    = errors.New("photo not found")

	// Conflict: the entity exists but is in the wrong state for the request.
	ErrCarNotAvailable         = errors.New("car is not available")
	ErrRentalNotActive         = errors.New("rental is not active")
	ErrRentalNotReturned       = errors.New("rental is not returned")
	ErrCarHasActiveRental      = errors.New("car has an active rental")
	ErrCustomerHasActiveRental = errors.New("customer has an active rental")
	ErrDuplicateRegistration   = errors.New("registration number already exists")
	ErrDuplicateLicense        = errors.New("license number already exists")
	ErrDuplicateEmail          = errors.New("email already exists")
	ErrDuplicateUsername       = errors.New("username already exists")

	// Persistence: the underlying write failed. Distinct per step so the
	// caller can tell which half of a rent/return fell over.
	ErrCarUpdateFailed    = errors.New("car status update failed")
	ErrLedgerUpdateFailed = errors.New("ledger update failed")
)
