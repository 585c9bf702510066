package models

import "github.com/google/uuid"

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
}

// DeviceAccessRequest is the body of POST /api/request-device-access.
// It extends an account's device allow-list to an additional device after
// the password is re-verified. The identifier is caller-supplied and not
// attested; see the device fingerprint contract.
type DeviceAccessRequest struct {
	UserID        uuid.UUID `json:"userId"`
	Password      string    `json:"password"`
	NewDeviceID   string    `json:"newDeviceId"`
	NewDeviceName string    `json:"newDeviceName"`
}

// UserUpdate carries the mutable profile and preference fields accepted by
// PUT /api/user/{userID}. All fields are optional; only non-nil values are
// written. Credential and device fields are intentionally absent: attempts
// to set them through this path are rejected at the transport layer.
type UserUpdate struct {
	DisplayName *string      `json:"displayName"`
	Bio         *string      `json:"bio"`
	Avatar      *string      `json:"avatar"`
	SocialMedia *SocialMedia `json:"socialMedia"`
	Volume      *int         `json:"volume"`
	LoopEnabled *bool        `json:"loopEnabled"`
}

// CreatePlaylistRequest is the body of POST /api/playlists.
type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// AddPlaylistTrackRequest is the body of POST /api/playlists/{playlistID}/tracks.
type AddPlaylistTrackRequest struct {
	TrackID uuid.UUID `json:"trackId"`
}
