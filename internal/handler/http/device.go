package http

import (
	"net/http"

	"github.com/xiecchuot/player-server/internal/device"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

// getDevice is the fingerprint helper endpoint. Thin clients that do not
// compute their own identifier call it to obtain a server-derived fingerprint
// plus a readable device name before registering or logging in.
func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.DeviceResponse{
		DeviceID:   device.FromRequest(r),
		DeviceName: device.NameFromUserAgent(r.UserAgent()),
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, struct {
		Status string `json:"status"`
	}{Status: "ok"}, http.StatusOK)
}
