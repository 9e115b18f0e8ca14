package models

import "errors"

// Sentinel errors the handlers map to HTTP statuses. Anything else is
// treated as an internal failure: logged with detail, returned to the
// client as a generic message.
var (
	ErrEmailExists        = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrFundraiserNotFound = errors.New("Fundraiser not found")
	ErrDonationNotFound   = errors.New("Donation not found")

	ErrImageRequired = errors.New("Image is required")
	ErrImageTooLarge = errors.New("Image must be smaller than 5MB")
	ErrImageType     = errors.New("Only jpeg, jpg, png and gif images are allowed")
)

// ValidationError carries one message per failed field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "Validation error"
}
