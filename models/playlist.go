package models

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a named, ordered collection of a user's tracks.
// Public playlists are browsable by every account.
type Playlist struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`

	// TrackIDs lists the member tracks in playlist order.
	TrackIDs []uuid.UUID `json:"tracks"`

	CreatedAt time.Time `json:"createdAt"`
}

// PublicPlaylist is a playlist together with its owner's username, used by
// the browse view where playlists from all users are listed.
type PublicPlaylist struct {
	Playlist
	OwnerUsername string `json:"ownerUsername"`
}

func (p Playlist) TableName() string {
	return "playlists"
}
