package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/xiecchuot/player-server/internal/device"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/service"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

// writeFailure sends the uniform {success:false, message} envelope.
func writeFailure(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, statusCode)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// browsers that do not send a device descriptor get one from the User-Agent
	if req.DeviceName == "" {
		req.DeviceName = device.NameFromUserAgent(r.UserAgent())
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationUsername),
			errors.Is(err, service.ErrValidationEmail),
			errors.Is(err, service.ErrValidationPassword):
			log.Err(err).Msg("registration validation failed")
			writeFailure(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			writeFailure(w, "Username already exists", http.StatusConflict)
			return
		case errors.Is(err, store.ErrEmailTaken):
			log.Err(err).Msg("email already registered")
			writeFailure(w, "Email already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	publicUser := registeredUser.Public()
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Response: models.Response{Success: true, Message: "Registration successful"},
		User:     &publicUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		var devErr *service.DeviceUnauthorizedError
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeFailure(w, "User not found", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			writeFailure(w, "Incorrect password", http.StatusUnauthorized)
			return
		case errors.As(err, &devErr):
			log.Err(err).Msg("login attempt from unauthorized device")
			utils.WriteJSON(w, models.AuthResponse{
				Response:           models.Response{Success: false, Message: "This device is not authorized for this account"},
				DeviceUnauthorized: true,
				AllowedDevice:      devErr.AllowedDevice,
			}, http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	publicUser := foundUser.Public()
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Response: models.Response{Success: true, Message: "Login successful"},
		User:     &publicUser,
	}, http.StatusOK)
}

func (h *Handler) requestDeviceAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeviceAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.NewDeviceName == "" {
		req.NewDeviceName = device.NameFromUserAgent(r.UserAgent())
	}

	if _, err := h.services.AuthService.RequestDeviceAccess(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeFailure(w, "User not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password on device access request")
			writeFailure(w, "Incorrect password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device access request")
			writeFailure(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Device access granted! You can now login from this device."}, http.StatusOK)
}
