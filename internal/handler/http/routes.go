package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/device", h.getDevice)

		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/request-device-access", h.requestDeviceAccess)
	})

	// routes behind the bearer-token check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/{userID}", h.getUser)
		r.Put("/api/user/{userID}", h.updateUser)

		r.Get("/api/users/search", h.searchUsers)
		r.Get("/api/users/following", h.getFollowing)
		r.Post("/api/users/{userID}/follow", h.follow)
		r.Delete("/api/users/{userID}/follow", h.unfollow)

		r.Post("/api/tracks", h.uploadTrack)
		r.Get("/api/tracks", h.getTracks)
		r.Get("/api/tracks/{trackID}/content", h.getTrackContent)
		r.Delete("/api/tracks/{trackID}", h.deleteTrack)
		r.Post("/api/tracks/{trackID}/like", h.toggleLike)
		r.Get("/api/likes", h.getLikes)

		r.Post("/api/playlists", h.createPlaylist)
		r.Get("/api/playlists", h.getPlaylists)
		r.Get("/api/playlists/public", h.getPublicPlaylists)
		r.Post("/api/playlists/{playlistID}/tracks", h.addTrackToPlaylist)
	})

	return router
}
