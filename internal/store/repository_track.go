package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/models"
)

// trackRepository is the PostgreSQL-backed implementation of [TrackRepository].
type trackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTrackRepository constructs a [TrackRepository] backed by the provided
// database connection and logger.
func NewTrackRepository(db *DB, logger *logger.Logger) TrackRepository {
	logger.Debug().Msg("creating track repository")
	return &trackRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTrack persists track metadata and returns the record with the
// storage-assigned timestamp filled in.
func (r *trackRepository) CreateTrack(ctx context.Context, track models.Track) (models.Track, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTrack,
		track.ID,
		track.UserID,
		track.Name,
		track.FileName,
		track.MimeType,
		track.SizeBytes,
	)

	if err := row.Scan(&track.AddedAt); err != nil {
		log.Err(err).
			Str("func", "*trackRepository.CreateTrack").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: inserting track failed")
		return models.Track{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return track, nil
}

// GetTracks returns all tracks owned by userID ordered by upload time.
func (r *trackRepository) GetTracks(ctx context.Context, userID uuid.UUID) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getTracks, userID)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.GetTracks").Msg("error: listing tracks failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var track models.Track
		err := rows.Scan(&track.ID, &track.UserID, &track.Name, &track.FileName, &track.MimeType, &track.SizeBytes, &track.AddedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tracks, nil
}

// GetTrack returns a single track owned by userID. Returns [ErrTrackNotFound]
// when the track does not exist or belongs to another account.
func (r *trackRepository) GetTrack(ctx context.Context, userID, trackID uuid.UUID) (models.Track, error) {
	log := logger.FromContext(ctx)

	var track models.Track
	row := r.db.QueryRowContext(ctx, getTrack, trackID, userID)
	err := row.Scan(&track.ID, &track.UserID, &track.Name, &track.FileName, &track.MimeType, &track.SizeBytes, &track.AddedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Track{}, ErrTrackNotFound
		}
		log.Err(err).Str("func", "*trackRepository.GetTrack").Msg("error: track lookup failed")
		return models.Track{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return track, nil
}

// DeleteTrack removes a track row owned by userID. Likes and playlist
// membership rows go with it via ON DELETE CASCADE. Returns
// [ErrTrackNotFound] when nothing was deleted.
func (r *trackRepository) DeleteTrack(ctx context.Context, userID, trackID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTrack, trackID, userID)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.DeleteTrack").Msg("error: deleting track failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTrackNotFound
	}

	return nil
}

// ToggleLike flips the liked state of trackID for userID and reports the
// resulting state: true when the track is now liked, false when the like was
// removed. The insert-first strategy makes the flip race-safe without an
// explicit transaction: a concurrent duplicate insert lands on
// ON CONFLICT DO NOTHING and falls through to the delete.
func (r *trackRepository) ToggleLike(ctx context.Context, userID, trackID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertLike, userID, trackID)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.ToggleLike").Msg("error: inserting like failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}
	if inserted > 0 {
		return true, nil
	}

	// like already existed, so the toggle removes it
	if _, err := r.db.ExecContext(ctx, deleteLike, userID, trackID); err != nil {
		log.Err(err).Str("func", "*trackRepository.ToggleLike").Msg("error: deleting like failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return false, nil
}

// GetLikedTrackIDs returns the ids of all tracks userID has liked.
func (r *trackRepository) GetLikedTrackIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getLikedTrackIDs, userID)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.GetLikedTrackIDs").Msg("error: listing likes failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var trackIDs []uuid.UUID
	for rows.Next() {
		var trackID uuid.UUID
		if err := rows.Scan(&trackID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		trackIDs = append(trackIDs, trackID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return trackIDs, nil
}
