package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/internal/content"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/models"
)

// libraryService is the concrete implementation of LibraryService. Track
// metadata lives in the TrackRepository; audio bytes live in the content
// store keyed by track id.
type libraryService struct {
	trackRepository store.TrackRepository
	contentStore    content.Store
	logger          *logger.Logger
}

// NewLibraryService constructs a LibraryService wired to the given
// repository and content store.
func NewLibraryService(trackRepository store.TrackRepository, contentStore content.Store, logger *logger.Logger) LibraryService {
	return &libraryService{
		trackRepository: trackRepository,
		contentStore:    contentStore,
		logger:          logger,
	}
}

// UploadTrack stores the audio bytes and then the metadata record. When the
// metadata insert fails the already-uploaded object is removed so no
// orphaned bytes stay behind.
func (s *libraryService) UploadTrack(ctx context.Context, track models.Track, audio io.Reader) (models.Track, error) {
	log := logger.FromContext(ctx)

	if track.UserID == uuid.Nil || track.Name == "" || audio == nil {
		log.Error().Str("name", track.Name).Msg("invalid track data provided")
		return models.Track{}, ErrInvalidDataProvided
	}

	track.ID = uuid.New()

	if err := s.contentStore.Upload(ctx, track.ID.String(), audio, track.SizeBytes, track.MimeType); err != nil {
		log.Err(err).Str("trackID", track.ID.String()).Msg("uploading track content failed")
		return models.Track{}, fmt.Errorf("uploading track content failed: %w", err)
	}

	createdTrack, err := s.trackRepository.CreateTrack(ctx, track)
	if err != nil {
		log.Err(err).Str("trackID", track.ID.String()).Msg("track creation ended with error")

		if deleteErr := s.contentStore.Delete(ctx, track.ID.String()); deleteErr != nil {
			log.Err(deleteErr).Str("trackID", track.ID.String()).Msg("orphaned track content cleanup failed")
		}
		return models.Track{}, fmt.Errorf("track creation ended with error: %w", err)
	}

	return createdTrack, nil
}

// GetTracks lists the user's track metadata in upload order.
func (s *libraryService) GetTracks(ctx context.Context, userID uuid.UUID) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	tracks, err := s.trackRepository.GetTracks(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("listing tracks failed")
		return nil, fmt.Errorf("listing tracks failed: %w", err)
	}

	return tracks, nil
}

// GetTrackContent opens the audio bytes of one of the user's tracks together
// with its metadata. Returns store.ErrTrackNotFound (wrapped) when the track
// does not exist or belongs to another account.
func (s *libraryService) GetTrackContent(ctx context.Context, userID, trackID uuid.UUID) (TrackContent, error) {
	log := logger.FromContext(ctx)

	track, err := s.trackRepository.GetTrack(ctx, userID, trackID)
	if err != nil {
		if errors.Is(err, store.ErrTrackNotFound) {
			return TrackContent{}, err
		}
		log.Err(err).Str("trackID", trackID.String()).Msg("track lookup failed")
		return TrackContent{}, fmt.Errorf("track lookup failed: %w", err)
	}

	reader, err := s.contentStore.Download(ctx, trackID.String())
	if err != nil {
		log.Err(err).Str("trackID", trackID.String()).Msg("downloading track content failed")

		// metadata row without a stored object: report the track as missing
		// rather than failing mid-stream
		if errors.Is(err, content.ErrObjectNotFound) {
			return TrackContent{}, fmt.Errorf("%w: %w", store.ErrTrackNotFound, err)
		}
		return TrackContent{}, fmt.Errorf("downloading track content failed: %w", err)
	}

	return TrackContent{Track: track, Content: reader}, nil
}

// DeleteTrack removes the metadata record and then the stored bytes. A
// failure to delete the object after the row is gone is logged but not
// surfaced; the metadata row is the source of truth.
func (s *libraryService) DeleteTrack(ctx context.Context, userID, trackID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.trackRepository.DeleteTrack(ctx, userID, trackID); err != nil {
		if errors.Is(err, store.ErrTrackNotFound) {
			return err
		}
		log.Err(err).Str("trackID", trackID.String()).Msg("deleting track failed")
		return fmt.Errorf("deleting track failed: %w", err)
	}

	if err := s.contentStore.Delete(ctx, trackID.String()); err != nil {
		log.Err(err).Str("trackID", trackID.String()).Msg("deleting track content failed")
	}

	return nil
}

// ToggleLike flips the liked state of a track and reports the new state.
func (s *libraryService) ToggleLike(ctx context.Context, userID, trackID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	liked, err := s.trackRepository.ToggleLike(ctx, userID, trackID)
	if err != nil {
		log.Err(err).Str("trackID", trackID.String()).Msg("toggling like failed")
		return false, fmt.Errorf("toggling like failed: %w", err)
	}

	return liked, nil
}

// GetLikedTrackIDs returns the ids of the user's liked tracks.
func (s *libraryService) GetLikedTrackIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	trackIDs, err := s.trackRepository.GetLikedTrackIDs(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("listing likes failed")
		return nil, fmt.Errorf("listing likes failed: %w", err)
	}

	return trackIDs, nil
}
