package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserNotFound        = errors.New("user not found")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrProtectedField is returned when a profile update tries to touch a
	// credential or device field. Those never change through the update path.
	ErrProtectedField = errors.New("field cannot be updated")

	ErrValidationUsername = errors.New("username must be at least 3 characters and contain only letters, numbers, and underscores")
	ErrValidationEmail    = errors.New("invalid email format")
	ErrValidationPassword = errors.New("password must be at least 6 characters")
)

// DeviceUnauthorizedError is returned by Login when the credentials are
// correct but the requesting device is not on the account's allow-list.
// Callers match it with [errors.As] to build the device-denial response;
// AllowedDevice names the device the account was registered from.
type DeviceUnauthorizedError struct {
	AllowedDevice string
}

func (e *DeviceUnauthorizedError) Error() string {
	return fmt.Sprintf("device not authorized for this account, allowed device: %s", e.AllowedDevice)
}
