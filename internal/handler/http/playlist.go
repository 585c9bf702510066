package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/service"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.PlaylistService.CreatePlaylist(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeFailure(w, "invalid data provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during playlist creation")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PlaylistResponse{
		Response: models.Response{Success: true, Message: "Playlist created"},
		Playlist: &playlist,
	}, http.StatusCreated)
}

func (h *Handler) getPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	playlists, err := h.services.PlaylistService.GetPlaylists(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during playlist listing")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if playlists == nil {
		playlists = []models.Playlist{}
	}
	utils.WriteJSON(w, models.PlaylistsResponse{
		Response:  models.Response{Success: true},
		Playlists: playlists,
	}, http.StatusOK)
}

func (h *Handler) addTrackToPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	playlistID, err := pathUUID(r, "playlistID")
	if err != nil {
		writeFailure(w, "invalid playlist id", http.StatusBadRequest)
		return
	}

	var req models.AddPlaylistTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PlaylistService.AddTrackToPlaylist(ctx, userID, playlistID, req.TrackID); err != nil {
		switch {
		case errors.Is(err, store.ErrPlaylistNotFound):
			writeFailure(w, "Playlist not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrTrackNotFound):
			writeFailure(w, "Track not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during playlist update")
			writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Track added to playlist"}, http.StatusOK)
}

func (h *Handler) getPublicPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playlists, err := h.services.PlaylistService.GetPublicPlaylists(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during public playlist listing")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if playlists == nil {
		playlists = []models.PublicPlaylist{}
	}
	utils.WriteJSON(w, models.PublicPlaylistsResponse{
		Response:  models.Response{Success: true},
		Playlists: playlists,
	}, http.StatusOK)
}
