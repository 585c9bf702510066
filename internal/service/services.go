package service

import (
	"github.com/xiecchuot/player-server/internal/config"
	"github.com/xiecchuot/player-server/internal/content"
	"github.com/xiecchuot/player-server/internal/crypto"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/store"
)

// Services bundles every domain service behind its interface.
type Services struct {
	AuthService     AuthService
	AccountService  AccountService
	LibraryService  LibraryService
	PlaylistService PlaylistService
	SocialService   SocialService
}

// NewServices wires all services to the repositories, the content store, and
// the password hasher configured by cfg.
func NewServices(storages *store.Storages, contentStore content.Store, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg, logger),
		AccountService:  NewAccountService(storages.UserRepository, logger),
		LibraryService:  NewLibraryService(storages.TrackRepository, contentStore, logger),
		PlaylistService: NewPlaylistService(storages.PlaylistRepository, logger),
		SocialService:   NewSocialService(storages.SocialRepository, logger),
	}
}
