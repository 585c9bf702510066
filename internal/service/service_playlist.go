package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/models"
)

// playlistService is the concrete implementation of PlaylistService.
type playlistService struct {
	playlistRepository store.PlaylistRepository
	logger             *logger.Logger
}

// NewPlaylistService constructs a PlaylistService wired to the given
// repository.
func NewPlaylistService(playlistRepository store.PlaylistRepository, logger *logger.Logger) PlaylistService {
	return &playlistService{
		playlistRepository: playlistRepository,
		logger:             logger,
	}
}

// CreatePlaylist persists a new empty playlist owned by userID.
func (s *playlistService) CreatePlaylist(ctx context.Context, userID uuid.UUID, req models.CreatePlaylistRequest) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		log.Error().Str("userID", userID.String()).Msg("playlist without name")
		return models.Playlist{}, ErrInvalidDataProvided
	}

	playlist := models.Playlist{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}

	createdPlaylist, err := s.playlistRepository.CreatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("playlist creation ended with error")
		return models.Playlist{}, fmt.Errorf("playlist creation ended with error: %w", err)
	}

	return createdPlaylist, nil
}

// GetPlaylists lists the user's playlists with their track ids.
func (s *playlistService) GetPlaylists(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)

	playlists, err := s.playlistRepository.GetPlaylists(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("listing playlists failed")
		return nil, fmt.Errorf("listing playlists failed: %w", err)
	}

	return playlists, nil
}

// AddTrackToPlaylist appends a track to one of the user's playlists.
// Adding a track that is already in the playlist succeeds without effect.
func (s *playlistService) AddTrackToPlaylist(ctx context.Context, userID, playlistID, trackID uuid.UUID) error {
	log := logger.FromContext(ctx)

	err := s.playlistRepository.AddTrackToPlaylist(ctx, userID, playlistID, trackID)
	if err != nil {
		if errors.Is(err, store.ErrPlaylistNotFound) || errors.Is(err, store.ErrTrackNotFound) {
			return err
		}
		log.Err(err).Str("playlistID", playlistID.String()).Msg("adding track to playlist failed")
		return fmt.Errorf("adding track to playlist failed: %w", err)
	}

	return nil
}

// GetPublicPlaylists returns every public playlist for the browse view.
func (s *playlistService) GetPublicPlaylists(ctx context.Context) ([]models.PublicPlaylist, error) {
	log := logger.FromContext(ctx)

	playlists, err := s.playlistRepository.GetPublicPlaylists(ctx)
	if err != nil {
		log.Err(err).Msg("listing public playlists failed")
		return nil, fmt.Errorf("listing public playlists failed: %w", err)
	}

	return playlists, nil
}
