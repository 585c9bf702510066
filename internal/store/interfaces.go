package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for account records and their
// device allow-lists.
type UserRepository interface {
	// CreateUser persists a new account together with its registered device
	// as the first entry of the allow-list. The write is atomic: either the
	// full record lands or nothing does. Username and email uniqueness is
	// enforced by the storage layer, not by a prior read.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	// AddAllowedDevice appends a device to the account's allow-list.
	// Adding an already-present device is a no-op, not an error.
	AddAllowedDevice(ctx context.Context, userID uuid.UUID, deviceID, deviceName string) error

	// UpdateUser applies the non-nil profile/preference fields of update.
	// Credential and device fields are not reachable through this path.
	UpdateUser(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (models.User, error)

	// SearchUsers returns accounts whose username contains the query
	// substring, excluding the requesting account.
	SearchUsers(ctx context.Context, query string, excludeID uuid.UUID) ([]models.User, error)
}

// TrackRepository is the persistence contract for track metadata and likes.
// Track bytes are not stored here; they live in the content store keyed by
// track id.
type TrackRepository interface {
	CreateTrack(ctx context.Context, track models.Track) (models.Track, error)
	GetTracks(ctx context.Context, userID uuid.UUID) ([]models.Track, error)
	GetTrack(ctx context.Context, userID, trackID uuid.UUID) (models.Track, error)
	DeleteTrack(ctx context.Context, userID, trackID uuid.UUID) error

	// ToggleLike flips the liked state of a track for the given user and
	// reports the resulting state.
	ToggleLike(ctx context.Context, userID, trackID uuid.UUID) (bool, error)
	GetLikedTrackIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// PlaylistRepository is the persistence contract for playlists and their
// track membership.
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	GetPlaylists(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error)
	AddTrackToPlaylist(ctx context.Context, userID, playlistID, trackID uuid.UUID) error

	// GetPublicPlaylists returns every public playlist together with its
	// owner's username for the browse view.
	GetPublicPlaylists(ctx context.Context) ([]models.PublicPlaylist, error)
}

// SocialRepository is the persistence contract for the follower graph.
type SocialRepository interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	GetFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
