package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiecchuot/player-server/internal/config"
	"github.com/xiecchuot/player-server/internal/crypto"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/internal/mock"
	"github.com/xiecchuot/player-server/internal/store"
	"github.com/xiecchuot/player-server/models"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, crypto.PasswordHasher) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	hasher := crypto.NewBcryptHasher(4) // minimal cost to keep the suite fast

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "player-server",
		TokenDuration: time.Hour,
	}

	return NewAuthService(mockRepo, hasher, cfg, logger.Nop()), mockRepo, hasher
}

func registeredUser(t *testing.T, hasher crypto.PasswordHasher, password string) models.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	return models.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Profile:      models.DefaultProfile("alice"),
		Preferences:  models.DefaultPreferences(),
		RegisteredDevice: models.Device{
			DeviceID:   "fp-original",
			DeviceName: "Linux - Firefox",
		},
		AllowedDevices: []string{"fp-original"},
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "secret123",
		DeviceID:   "fp-original",
		DeviceName: "Linux - Firefox",
	}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, uuid.Nil, u.ID)
			assert.Equal(t, req.Username, u.Username)
			assert.Equal(t, req.DeviceID, u.RegisteredDevice.DeviceID)
			assert.Equal(t, 70, u.Preferences.Volume)
			assert.NotEqual(t, req.Password, u.PasswordHash, "password must be stored hashed")
			assert.True(t, hasher.Verify(req.Password, u.PasswordHash))
			u.AllowedDevices = []string{u.RegisteredDevice.DeviceID}
			return u, nil
		},
	)

	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"fp-original"}, created.AllowedDevices)
}

func TestAuthService_Register_DefaultsDeviceName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		DeviceID: "devA",
		// no DeviceName supplied
	}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Unknown Device", u.RegisteredDevice.DeviceName,
				"an empty device name must not be persisted")
			return u, nil
		},
	)

	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Device", created.RegisteredDevice.DeviceName)
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "short username",
			req:     models.RegisterRequest{Username: "ab", Email: "a@b.co", Password: "secret123", DeviceID: "fp"},
			wantErr: ErrValidationUsername,
		},
		{
			name:    "username with spaces",
			req:     models.RegisterRequest{Username: "a b c", Email: "a@b.co", Password: "secret123", DeviceID: "fp"},
			wantErr: ErrValidationUsername,
		},
		{
			name:    "bad email",
			req:     models.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret123", DeviceID: "fp"},
			wantErr: ErrValidationEmail,
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Username: "alice", Email: "a@b.co", Password: "12345", DeviceID: "fp"},
			wantErr: ErrValidationPassword,
		},
		{
			name:    "missing device",
			req:     models.RegisterRequest{Username: "alice", Email: "a@b.co", Password: "secret123"},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "alice", Email: "a@b.co", Password: "secret123", DeviceID: "fp",
	})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")
	mockRepo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)

	got, err := svc.Login(ctx, models.LoginRequest{
		Username: "alice", Password: "secret123", DeviceID: "fp-original",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "secret123", DeviceID: "fp"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_WrongPasswordCheckedBeforeDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")
	mockRepo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)

	// wrong password AND unknown device: the password failure must win
	_, err := svc.Login(ctx, models.LoginRequest{
		Username: "alice", Password: "wrong-pass", DeviceID: "fp-unknown",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	var devErr *DeviceUnauthorizedError
	assert.False(t, errors.As(err, &devErr))
}

func TestAuthService_Login_UnauthorizedDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")
	// no AddAllowedDevice expectation: login must never extend the allow-list
	mockRepo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)

	_, err := svc.Login(ctx, models.LoginRequest{
		Username: "alice", Password: "secret123", DeviceID: "fp-unknown",
	})

	var devErr *DeviceUnauthorizedError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, "Linux - Firefox", devErr.AllowedDevice)
}

func TestAuthService_Login_SecondAllowedDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")
	user.AllowedDevices = append(user.AllowedDevices, "fp-laptop")
	mockRepo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil)

	_, err := svc.Login(ctx, models.LoginRequest{
		Username: "alice", Password: "secret123", DeviceID: "fp-laptop",
	})
	require.NoError(t, err)
}

// ── RequestDeviceAccess ──────────────────────────────────────────────────────

func TestAuthService_RequestDeviceAccess_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil),
		mockRepo.EXPECT().AddAllowedDevice(ctx, user.ID, "fp-laptop", "Windows - Chrome").Return(nil),
	)

	got, err := svc.RequestDeviceAccess(ctx, models.DeviceAccessRequest{
		UserID: user.ID, Password: "secret123", NewDeviceID: "fp-laptop", NewDeviceName: "Windows - Chrome",
	})
	require.NoError(t, err)
	assert.Contains(t, got.AllowedDevices, "fp-laptop")
	assert.Contains(t, got.AllowedDevices, "fp-original")
}

func TestAuthService_RequestDeviceAccess_DefaultsDeviceName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil),
		mockRepo.EXPECT().AddAllowedDevice(ctx, user.ID, "fp-laptop", "Unknown Device").Return(nil),
	)

	_, err := svc.RequestDeviceAccess(ctx, models.DeviceAccessRequest{
		UserID: user.ID, Password: "secret123", NewDeviceID: "fp-laptop",
	})
	require.NoError(t, err)
}

func TestAuthService_RequestDeviceAccess_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil),
		mockRepo.EXPECT().AddAllowedDevice(ctx, user.ID, "fp-original", "Linux - Firefox").Return(nil),
	)

	got, err := svc.RequestDeviceAccess(ctx, models.DeviceAccessRequest{
		UserID: user.ID, Password: "secret123", NewDeviceID: "fp-original", NewDeviceName: "Linux - Firefox",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fp-original"}, got.AllowedDevices, "granting a known device must not duplicate it")
}

func TestAuthService_RequestDeviceAccess_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")
	// the grant must not happen on a failed password check
	mockRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	_, err := svc.RequestDeviceAccess(ctx, models.DeviceAccessRequest{
		UserID: user.ID, Password: "wrong", NewDeviceID: "fp-laptop",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_RequestDeviceAccess_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	id := uuid.New()

	mockRepo.EXPECT().FindUserByID(ctx, id).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.RequestDeviceAccess(ctx, models.DeviceAccessRequest{
		UserID: id, Password: "secret123", NewDeviceID: "fp-laptop",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundtrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := registeredUser(t, hasher, "secret123")

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
