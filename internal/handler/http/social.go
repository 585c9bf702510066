package http

import (
	"errors"
	"net/http"

	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	followerID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	followeeID, err := pathUUID(r, "userID")
	if err != nil {
		writeFailure(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.SocialService.Follow(ctx, followerID, followeeID); err != nil {
		switch {
		case errors.Is(err, store.ErrSelfFollow):
			writeFailure(w, "You cannot follow yourself", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			writeFailure(w, "User not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during follow")
			writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Followed"}, http.StatusOK)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	followerID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	followeeID, err := pathUUID(r, "userID")
	if err != nil {
		writeFailure(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.SocialService.Unfollow(ctx, followerID, followeeID); err != nil {
		log.Err(err).Msg("unexpected error occurred during unfollow")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Unfollowed"}, http.StatusOK)
}

func (h *Handler) getFollowing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	followeeIDs, err := h.services.SocialService.GetFollowing(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during following listing")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(followeeIDs))
	for _, id := range followeeIDs {
		ids = append(ids, id.String())
	}

	utils.WriteJSON(w, struct {
		models.Response
		Following []string `json:"following"`
	}{
		Response:  models.Response{Success: true},
		Following: ids,
	}, http.StatusOK)
}
