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

// accountService is the concrete implementation of AccountService.
type accountService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// UserRepository.
func NewAccountService(userRepository store.UserRepository, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the full account record. Returns ErrUserNotFound when the
// account does not exist.
func (s *accountService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("userID", userID.String()).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return foundUser, nil
}

// UpdateUser applies the non-nil profile and preference fields of update.
// Credential and device fields cannot be reached through this path; the
// transport layer rejects them before the request gets here.
//
// An update carrying no fields at all succeeds and returns the unchanged
// record, matching what the player UI expects from a no-op save.
func (s *accountService) UpdateUser(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	updatedUser, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNothingToUpdate):
			return s.GetUser(ctx, userID)
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, ErrUserNotFound
		default:
			log.Err(err).Str("userID", userID.String()).Msg("user update failed")
			return models.User{}, fmt.Errorf("user update failed: %w", err)
		}
	}

	return updatedUser, nil
}

// SearchUsers returns accounts whose username contains query, excluding the
// requester. An empty query yields an empty result instead of the full user
// table.
func (s *accountService) SearchUsers(ctx context.Context, query string, requesterID uuid.UUID) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if query == "" {
		return nil, nil
	}

	found, err := s.userRepository.SearchUsers(ctx, query, requesterID)
	if err != nil {
		log.Err(err).Str("query", query).Msg("user search failed")
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	return found, nil
}
