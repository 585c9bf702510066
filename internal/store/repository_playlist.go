package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/models"
)

// playlistRepository is the PostgreSQL-backed implementation of
// [PlaylistRepository]. Playlist rows and their track membership live in
// separate tables; list methods stitch them back together in one extra query
// instead of N per playlist.
type playlistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlaylistRepository constructs a [PlaylistRepository] backed by the
// provided database connection and logger.
func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	logger.Debug().Msg("creating playlist repository")
	return &playlistRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlaylist persists a new empty playlist and returns the record with
// the storage-assigned timestamp filled in.
func (r *playlistRepository) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPlaylist,
		playlist.ID,
		playlist.UserID,
		playlist.Name,
		playlist.Description,
		playlist.IsPublic,
	)

	if err := row.Scan(&playlist.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*playlistRepository.CreatePlaylist").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: inserting playlist failed")
		return models.Playlist{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	playlist.TrackIDs = []uuid.UUID{}

	return playlist, nil
}

// GetPlaylists returns all playlists owned by userID with their track ids in
// playlist order.
func (r *playlistRepository) GetPlaylists(ctx context.Context, userID uuid.UUID) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getPlaylists, userID)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.GetPlaylists").Msg("error: listing playlists failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var playlist models.Playlist
		err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.Description, &playlist.IsPublic, &playlist.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		playlist.TrackIDs = []uuid.UUID{}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.attachTracks(ctx, getPlaylistTracks, userID, func(playlistID, trackID uuid.UUID) {
		for i := range playlists {
			if playlists[i].ID == playlistID {
				playlists[i].TrackIDs = append(playlists[i].TrackIDs, trackID)
				return
			}
		}
	}); err != nil {
		log.Err(err).Str("func", "*playlistRepository.GetPlaylists").Msg("error: listing playlist tracks failed")
		return nil, err
	}

	return playlists, nil
}

// AddTrackToPlaylist appends trackID to the end of the playlist. The insert
// verifies playlist ownership in the same statement; when zero rows land the
// method distinguishes a missing playlist from an already-present track.
//
// Error handling:
//   - Playlist missing or owned by someone else → [ErrPlaylistNotFound].
//   - Track already in the playlist → nil (idempotent append).
//   - foreign_key_violation on the track reference → [ErrTrackNotFound].
func (r *playlistRepository) AddTrackToPlaylist(ctx context.Context, userID, playlistID, trackID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, addTrackToPlaylist, playlistID, trackID, userID)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.AddTrackToPlaylist").Msg("error: inserting playlist track failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrTrackNotFound
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// zero rows: either the playlist is not ours or the track is already in it
	var exists bool
	if err := r.db.QueryRowContext(ctx, playlistExists, playlistID, userID).Scan(&exists); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if !exists {
		return ErrPlaylistNotFound
	}

	return nil
}

// GetPublicPlaylists returns every public playlist with its owner's username
// and track ids, newest first.
func (r *playlistRepository) GetPublicPlaylists(ctx context.Context) ([]models.PublicPlaylist, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getPublicPlaylists)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.GetPublicPlaylists").Msg("error: listing public playlists failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var playlists []models.PublicPlaylist
	for rows.Next() {
		var playlist models.PublicPlaylist
		err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.Description, &playlist.IsPublic, &playlist.CreatedAt, &playlist.OwnerUsername)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		playlist.TrackIDs = []uuid.UUID{}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.attachTracks(ctx, getPublicPlaylistTracks, nil, func(playlistID, trackID uuid.UUID) {
		for i := range playlists {
			if playlists[i].ID == playlistID {
				playlists[i].TrackIDs = append(playlists[i].TrackIDs, trackID)
				return
			}
		}
	}); err != nil {
		log.Err(err).Str("func", "*playlistRepository.GetPublicPlaylists").Msg("error: listing public playlist tracks failed")
		return nil, err
	}

	return playlists, nil
}

// attachTracks runs a (playlist_id, track_id) membership query and feeds each
// pair to assign. A nil arg means the query takes no parameters.
func (r *playlistRepository) attachTracks(ctx context.Context, query string, arg any, assign func(playlistID, trackID uuid.UUID)) error {
	var (
		rows *sql.Rows
		err  error
	)
	if arg == nil {
		rows, err = r.db.QueryContext(ctx, query)
	} else {
		rows, err = r.db.QueryContext(ctx, query, arg)
	}
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var playlistID, trackID uuid.UUID
		if err := rows.Scan(&playlistID, &trackID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assign(playlistID, trackID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
