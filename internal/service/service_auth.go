package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/xiecchuot/player-server/internal/config"
	"github.com/xiecchuot/player-server/internal/crypto"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/internal/utils"
	"github.com/xiecchuot/player-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification with the device
// allow-list check, device-access grants, and JWT token lifecycle, using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies bcrypt password digests.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// defaultDeviceName labels devices registered without a descriptor, so the
// device-denial message never names an empty device.
const defaultDeviceName = "Unknown Device"

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and password hasher, and populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates the username, email, and password against the registration
// rules, hashes the password, and persists the account with the registering
// device as both the registered device and the first allow-list entry.
//
// Returns the persisted user or:
//   - One of the ErrValidation* errors if a field violates its rule.
//   - ErrInvalidDataProvided if no device identifier was supplied.
//   - A wrapped storage error if persistence fails (e.g. username or email
//     already taken — see store.ErrUsernameTaken, store.ErrEmailTaken).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(req.Username, req.Email, req.Password); err != nil {
		log.Error().Str("username", req.Username).Msg("registration validation failed")
		return models.User{}, err
	}
	if req.DeviceID == "" {
		log.Error().Str("username", req.Username).Msg("registration without device identifier")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	deviceName := req.DeviceName
	if deviceName == "" {
		deviceName = defaultDeviceName
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Profile:      models.DefaultProfile(req.Username),
		Preferences:  models.DefaultPreferences(),
		RegisteredDevice: models.Device{
			DeviceID:   req.DeviceID,
			DeviceName: deviceName,
		},
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// The checks run in a fixed order regardless of input:
//  1. Account existence — unknown username → ErrUserNotFound.
//  2. Password — mismatch → ErrWrongPassword. The device is not inspected
//     before the password is verified.
//  3. Device — correct password from a device outside the allow-list →
//     *DeviceUnauthorizedError carrying the registered device's name.
//
// A successful login never mutates the account; in particular it never
// extends the allow-list.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Error().
			Str("id", foundUser.ID.String()).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if !slices.Contains(foundUser.AllowedDevices, req.DeviceID) {
		log.Error().
			Str("id", foundUser.ID.String()).
			Str("deviceID", req.DeviceID).
			Msg("login attempt from unauthorized device")
		return models.User{}, &DeviceUnauthorizedError{AllowedDevice: foundUser.RegisteredDevice.DeviceName}
	}

	return foundUser, nil
}

// RequestDeviceAccess extends an account's device allow-list to one more
// device after re-verifying the password.
//
// The same check order as Login applies up to the password; the device check
// is replaced by the grant itself. The grant is idempotent: requesting
// access for an already-allowed device succeeds without effect.
func (a *authService) RequestDeviceAccess(ctx context.Context, req models.DeviceAccessRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.UserID == uuid.Nil || req.Password == "" || req.NewDeviceID == "" {
		log.Error().Str("userID", req.UserID.String()).Msg("invalid device access data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("userID", req.UserID.String()).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Error().Str("id", foundUser.ID.String()).Msg("wrong password on device access request")
		return models.User{}, ErrWrongPassword
	}

	deviceName := req.NewDeviceName
	if deviceName == "" {
		deviceName = defaultDeviceName
	}

	if err := a.userRepository.AddAllowedDevice(ctx, foundUser.ID, req.NewDeviceID, deviceName); err != nil {
		log.Err(err).Str("id", foundUser.ID.String()).Msg("granting device access failed")
		return models.User{}, fmt.Errorf("granting device access failed: %w", err)
	}

	if !slices.Contains(foundUser.AllowedDevices, req.NewDeviceID) {
		foundUser.AllowedDevices = append(foundUser.AllowedDevices, req.NewDeviceID)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
