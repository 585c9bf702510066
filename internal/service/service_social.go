package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/store"
)

// socialService is the concrete implementation of SocialService.
type socialService struct {
	socialRepository store.SocialRepository
	logger           *logger.Logger
}

// NewSocialService constructs a SocialService wired to the given repository.
func NewSocialService(socialRepository store.SocialRepository, logger *logger.Logger) SocialService {
	return &socialService{
		socialRepository: socialRepository,
		logger:           logger,
	}
}

// Follow records that followerID follows followeeID. Self-follows are
// rejected before the storage layer is reached.
func (s *socialService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if followerID == followeeID {
		return store.ErrSelfFollow
	}

	if err := s.socialRepository.Follow(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, store.ErrSelfFollow) {
			return err
		}
		log.Err(err).Str("followeeID", followeeID.String()).Msg("follow failed")
		return fmt.Errorf("follow failed: %w", err)
	}

	return nil
}

// Unfollow removes the follow edge; unfollowing a never-followed account is
// a no-op.
func (s *socialService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.socialRepository.Unfollow(ctx, followerID, followeeID); err != nil {
		log.Err(err).Str("followeeID", followeeID.String()).Msg("unfollow failed")
		return fmt.Errorf("unfollow failed: %w", err)
	}

	return nil
}

// GetFollowing returns the ids of all accounts the user follows.
func (s *socialService) GetFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	followeeIDs, err := s.socialRepository.GetFollowing(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("listing follows failed")
		return nil, fmt.Errorf("listing follows failed: %w", err)
	}

	return followeeIDs, nil
}
