package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/service"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

// maxTrackUploadBytes caps a single multipart track upload.
const maxTrackUploadBytes = 100 << 20 // 100 MiB

func (h *Handler) uploadTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTrackUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Err(err).Msg("invalid multipart upload")
		writeFailure(w, "invalid multipart upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing track file")
		writeFailure(w, "missing track file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}

	track := models.Track{
		UserID:    userID,
		Name:      name,
		FileName:  header.Filename,
		MimeType:  mimeType,
		SizeBytes: header.Size,
	}

	createdTrack, err := h.services.LibraryService.UploadTrack(ctx, track, file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeFailure(w, "invalid data provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during track upload")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TrackResponse{
		Response: models.Response{Success: true, Message: "Track uploaded"},
		Track:    &createdTrack,
	}, http.StatusCreated)
}

func (h *Handler) getTracks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tracks, err := h.services.LibraryService.GetTracks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during track listing")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if tracks == nil {
		tracks = []models.Track{}
	}
	utils.WriteJSON(w, models.TracksResponse{
		Response: models.Response{Success: true},
		Tracks:   tracks,
	}, http.StatusOK)
}

func (h *Handler) getTrackContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	trackID, err := pathUUID(r, "trackID")
	if err != nil {
		writeFailure(w, "invalid track id", http.StatusBadRequest)
		return
	}

	trackContent, err := h.services.LibraryService.GetTrackContent(ctx, userID, trackID)
	if err != nil {
		if errors.Is(err, store.ErrTrackNotFound) {
			writeFailure(w, "Track not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during track download")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer trackContent.Content.Close()

	w.Header().Set("Content-Type", trackContent.Track.MimeType)
	if trackContent.Track.SizeBytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(trackContent.Track.SizeBytes, 10))
	}
	if _, err := io.Copy(w, trackContent.Content); err != nil {
		log.Err(err).Msg("error streaming track content")
	}
}

func (h *Handler) deleteTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	trackID, err := pathUUID(r, "trackID")
	if err != nil {
		writeFailure(w, "invalid track id", http.StatusBadRequest)
		return
	}

	if err := h.services.LibraryService.DeleteTrack(ctx, userID, trackID); err != nil {
		if errors.Is(err, store.ErrTrackNotFound) {
			writeFailure(w, "Track not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during track deletion")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Track deleted"}, http.StatusOK)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	trackID, err := pathUUID(r, "trackID")
	if err != nil {
		writeFailure(w, "invalid track id", http.StatusBadRequest)
		return
	}

	liked, err := h.services.LibraryService.ToggleLike(ctx, userID, trackID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during like toggle")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LikeResponse{
		Response: models.Response{Success: true},
		Liked:    liked,
	}, http.StatusOK)
}

func (h *Handler) getLikes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := authenticatedUserID(r)
	if !ok {
		writeFailure(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	trackIDs, err := h.services.LibraryService.GetLikedTrackIDs(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during likes listing")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(trackIDs))
	for _, id := range trackIDs {
		ids = append(ids, id.String())
	}

	utils.WriteJSON(w, models.LikesResponse{
		Response: models.Response{Success: true},
		TrackIDs: ids,
	}, http.StatusOK)
}
