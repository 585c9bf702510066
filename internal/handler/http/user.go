package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/service"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

// protectedUpdateKeys are request keys PUT /api/user must refuse: credential
// and device state never changes through the profile update path.
var protectedUpdateKeys = []string{"password", "passwordHash", "allowedDevices", "registeredDevice"}

// authenticatedUserID pulls the user id the auth middleware stored in the
// request context.
func authenticatedUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(utils.UserIDCtxKey).(uuid.UUID)
	return userID, ok
}

// pathUUID parses a UUID chi URL parameter.
func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, param))
}

// protectedFieldError reports [service.ErrProtectedField], naming the
// offending key, when the raw update payload touches a protected field.
func protectedFieldError(rawUpdate map[string]json.RawMessage) error {
	for _, key := range protectedUpdateKeys {
		if _, found := rawUpdate[key]; found {
			return fmt.Errorf("%w: %s", service.ErrProtectedField, key)
		}
	}

	return nil
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeFailure(w, "invalid user id", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AccountService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeFailure(w, "User not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user lookup")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	publicUser := foundUser.Public()
	utils.WriteJSON(w, models.UserResponse{
		Response: models.Response{Success: true},
		User:     &publicUser,
	}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeFailure(w, "invalid user id", http.StatusBadRequest)
		return
	}

	authedID, ok := authenticatedUserID(r)
	if !ok || authedID != userID {
		writeFailure(w, "cannot modify another user", http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, "error reading request body", http.StatusBadRequest)
		return
	}

	// the raw key set is inspected first so protected fields are rejected
	// even when their values would decode to no-ops
	var rawUpdate map[string]json.RawMessage
	if err := json.Unmarshal(body, &rawUpdate); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := protectedFieldError(rawUpdate); err != nil {
		log.Err(err).Msg("attempt to update protected field")
		writeFailure(w, err.Error(), http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.AccountService.UpdateUser(ctx, userID, update)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeFailure(w, "User not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user update")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	publicUser := updatedUser.Public()
	utils.WriteJSON(w, models.UserResponse{
		Response: models.Response{Success: true, Message: "Profile updated"},
		User:     &publicUser,
	}, http.StatusOK)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	found, err := h.services.AccountService.SearchUsers(ctx, r.URL.Query().Get("q"), requesterID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user search")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	users := make([]models.PublicUser, 0, len(found))
	for _, u := range found {
		users = append(users, u.Public())
	}

	utils.WriteJSON(w, models.UsersResponse{
		Response: models.Response{Success: true},
		Users:    users,
	}, http.StatusOK)
}
