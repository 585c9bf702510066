package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account with its device binding.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the account, generated at
	// registration time and immutable afterwards.
	ID uuid.UUID `json:"id"`

	// Username is the unique, case-sensitive account name used during
	// authentication. At least 3 characters, alphanumeric plus underscore.
	Username string `json:"username"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the account password.
	// This value MUST be a hash, never plaintext, and is excluded from
	// every JSON representation.
	PasswordHash string `json:"-"`

	// RegisteredDevice is the device that created the account. It is set
	// exactly once at registration and never reassigned by the login flow.
	RegisteredDevice Device `json:"registeredDevice"`

	// AllowedDevices is the set of device identifiers permitted to
	// authenticate as this account. Initialised to the registered device
	// and extended only through the device-access grant operation.
	// Never empty while the account exists.
	AllowedDevices []string `json:"allowedDevices"`

	// Profile holds the user-facing presentation data.
	Profile Profile `json:"profile"`

	// Preferences holds player settings persisted across sessions.
	Preferences Preferences `json:"preferences"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Device identifies a browser/device pairing. DeviceID is a best-effort
// client-derived fingerprint; DeviceName is informational only and is never
// used for authorization decisions.
type Device struct {
	DeviceID     string    `json:"deviceId"`
	DeviceName   string    `json:"deviceName"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Profile is the non-sensitive presentation data attached to an account.
type Profile struct {
	DisplayName string      `json:"displayName"`
	Bio         string      `json:"bio"`
	Avatar      string      `json:"avatar"`
	SocialMedia SocialMedia `json:"socialMedia"`
}

// SocialMedia holds optional external profile links.
type SocialMedia struct {
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

// Preferences holds per-account player settings.
type Preferences struct {
	Volume      int  `json:"volume"`
	LoopEnabled bool `json:"loopEnabled"`
}

// DefaultProfile returns the profile assigned to a freshly registered
// account, matching the defaults the web client expects.
func DefaultProfile(username string) Profile {
	return Profile{
		DisplayName: username,
		Bio:         "Welcome to xiecchuot player!",
		Avatar:      "👤",
	}
}

// DefaultPreferences returns the player settings assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{Volume: 70, LoopEnabled: false}
}

// PublicUser is the client-visible projection of a User. It carries no
// credential or device data beyond what the player UI needs.
type PublicUser struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Profile     Profile     `json:"profile"`
	Preferences Preferences `json:"preferences"`
}

// Public returns the client-visible view of the user. The password hash is
// never part of the projection.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Profile:     u.Profile,
		Preferences: u.Preferences,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
