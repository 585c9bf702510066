package store

import "github.com/xiecchuot/player-server/internal/logger"

// Storages bundles all repository implementations behind their interfaces.
type Storages struct {
	UserRepository     UserRepository
	TrackRepository    TrackRepository
	PlaylistRepository PlaylistRepository
	SocialRepository   SocialRepository
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TrackRepository:    NewTrackRepository(db, log),
		PlaylistRepository: NewPlaylistRepository(db, log),
		SocialRepository:   NewSocialRepository(db, log),
	}
}
