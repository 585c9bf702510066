package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/xiecchuot/player-server/internal/logger"
)

// socialRepository is the PostgreSQL-backed implementation of
// [SocialRepository], holding the follower graph in the "follows" table.
type socialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSocialRepository constructs a [SocialRepository] backed by the provided
// database connection and logger.
func NewSocialRepository(db *DB, logger *logger.Logger) SocialRepository {
	logger.Debug().Msg("creating social repository")
	return &socialRepository{
		db:     db,
		logger: logger,
	}
}

// Follow records that followerID follows followeeID. Following an account
// twice is a no-op. A foreign key violation means the followee does not
// exist and maps to [ErrNoUserWasFound].
func (r *socialRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertFollow, followerID, followeeID); err != nil {
		log.Err(err).Str("func", "*socialRepository.Follow").Msg("error: inserting follow failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrNoUserWasFound
		case pgerrcode.CheckViolation:
			return ErrSelfFollow
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// Unfollow removes the follow edge. Unfollowing an account that was never
// followed is a no-op.
func (r *socialRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteFollow, followerID, followeeID); err != nil {
		log.Err(err).Str("func", "*socialRepository.Unfollow").Msg("error: deleting follow failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetFollowing returns the ids of all accounts userID follows.
func (r *socialRepository) GetFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getFollowing, userID)
	if err != nil {
		log.Err(err).Str("func", "*socialRepository.GetFollowing").Msg("error: listing follows failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var followeeIDs []uuid.UUID
	for rows.Next() {
		var followeeID uuid.UUID
		if err := rows.Scan(&followeeID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		followeeIDs = append(followeeIDs, followeeID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return followeeIDs, nil
}
