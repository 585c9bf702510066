package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/models"
)

// AuthService implements the device-bound authentication core: account
// registration, credential verification with device checks, device-access
// grants, and JWT token lifecycle.
type AuthService interface {
	// Register creates a new account. The registering device becomes the
	// account's registered device and the sole entry of its allow-list.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an account. Checks run in a fixed order:
	// account existence, then password, then device authorization. A
	// correct password from an unknown device yields a
	// *DeviceUnauthorizedError; the allow-list is never modified by login.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// RequestDeviceAccess grants an additional device access to an account
	// after re-verifying the password. Granting an already-allowed device
	// succeeds without changing anything.
	RequestDeviceAccess(ctx context.Context, req models.DeviceAccessRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService covers profile reads and updates plus user search.
type AccountService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (models.User, error)
	SearchUsers(ctx context.Context, query string, requesterID uuid.UUID) ([]models.User, error)
}

// TrackContent couples a track's metadata with a reader over its audio
// bytes. The caller must close Content.
type TrackContent struct {
	Track   models.Track
	Content io.ReadCloser
}

// LibraryService manages a user's track collection: metadata in the record
// store, audio bytes in the content store, and the liked-tracks set.
type LibraryService interface {
	UploadTrack(ctx context.Context, track models.Track, content io.Reader) (models.Track, error)
	GetTracks(ctx context.Context, userID uuid.UUID) ([]models.Track, error)
	GetTrackContent(ctx context.Context, userID, trackID uuid.UUID) (TrackContent, error)
	DeleteTrack(ctx context.Context, userID, trackID uuid.UUID) error

	ToggleLike(ctx context.Context, userID, trackID uuid.UUID) (bool, error)
	GetLikedTrackIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// PlaylistService manages playlists and the public playlist browse view.
type PlaylistService interface {
	CreatePlaylist(ctx context.Context, userID uuid.UUID, req models.CreatePlaylistRequest) (models.Playlist, error)
	GetPlaylists(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error)
	AddTrackToPlaylist(ctx context.Context, userID, playlistID, trackID uuid.UUID) error
	GetPublicPlaylists(ctx context.Context) ([]models.PublicPlaylist, error)
}

// SocialService manages the follower graph.
type SocialService interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	GetFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
