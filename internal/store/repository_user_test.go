package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/models"
)

var userTestColumns = []string{
	"id", "username", "email", "password_hash", "display_name", "bio", "avatar",
	"twitter", "instagram", "youtube", "volume", "loop_enabled",
	"registered_device_id", "registered_device_name", "device_registered_at", "created_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func newUser() models.User {
	return models.User{
		ID:           uuid.New(),
		Username:     "john_doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		Profile:      models.DefaultProfile("john_doe"),
		Preferences:  models.DefaultPreferences(),
		RegisteredDevice: models.Device{
			DeviceID:   "fp-abc123",
			DeviceName: "Linux - Firefox",
		},
	}
}

func userRow(user models.User, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(userTestColumns).AddRow(
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.Profile.DisplayName, user.Profile.Bio, user.Profile.Avatar,
		user.Profile.SocialMedia.Twitter, user.Profile.SocialMedia.Instagram, user.Profile.SocialMedia.YouTube,
		user.Preferences.Volume, user.Preferences.LoopEnabled,
		user.RegisteredDevice.DeviceID, user.RegisteredDevice.DeviceName, now, now,
	)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := newUser()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"device_registered_at", "created_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO allowed_devices").
		WithArgs(user.ID, user.RegisteredDevice.DeviceID, user.RegisteredDevice.DeviceName).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if len(created.AllowedDevices) != 1 || created.AllowedDevices[0] != user.RegisteredDevice.DeviceID {
		t.Errorf("expected allow-list [%s], got %v", user.RegisteredDevice.DeviceID, created.AllowedDevices)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation, "users_username_key"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, newUser())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCreateUser_EmailTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation, "users_email_key"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, newUser())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, newUser())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := newUser()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(user.Username).
		WillReturnRows(userRow(user, now))
	mock.ExpectQuery("SELECT device_id FROM allowed_devices").
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"device_id"}).
			AddRow(user.RegisteredDevice.DeviceID).
			AddRow("fp-second-device"))

	found, err := repo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected id %s, got %s", user.ID, found.ID)
	}
	if len(found.AllowedDevices) != 2 {
		t.Errorf("expected 2 allowed devices, got %v", found.AllowedDevices)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "nobody")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	row := sqlmock.NewRows(userTestColumns).AddRow(
		"not-a-uuid", "john_doe", "john@example.com", "$2a$10$hash",
		"", "", "", "", "", "", 70, false,
		"fp-abc123", "Linux - Firefox", time.Now(), time.Now(),
	)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john_doe").
		WillReturnRows(row)

	_, err := repo.FindUserByUsername(ctx, "john_doe")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, id)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestAddAllowedDevice_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectExec("INSERT INTO allowed_devices").
		WithArgs(userID, "fp-new-device", "Windows - Chrome").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddAllowedDevice(ctx, userID, "fp-new-device", "Windows - Chrome"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddAllowedDevice_AlreadyPresent(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	// ON CONFLICT DO NOTHING: zero rows affected is still success
	mock.ExpectExec("INSERT INTO allowed_devices").
		WithArgs(userID, "fp-known-device", "Linux - Firefox").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AddAllowedDevice(ctx, userID, "fp-known-device", "Linux - Firefox"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := newUser()
	now := time.Now()

	bio := "new bio"
	volume := 55
	user.Profile.Bio = bio
	user.Preferences.Volume = volume

	mock.ExpectQuery("UPDATE users SET").
		WillReturnRows(userRow(user, now))
	mock.ExpectQuery("SELECT device_id FROM allowed_devices").
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"device_id"}).AddRow(user.RegisteredDevice.DeviceID))

	updated, err := repo.UpdateUser(ctx, user.ID, models.UserUpdate{Bio: &bio, Volume: &volume})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Profile.Bio != bio {
		t.Errorf("expected bio %q, got %q", bio, updated.Profile.Bio)
	}
	if updated.Preferences.Volume != volume {
		t.Errorf("expected volume %d, got %d", volume, updated.Preferences.Volume)
	}
}

func TestUpdateUser_NothingToUpdate(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateUser(context.Background(), uuid.New(), models.UserUpdate{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	bio := "bio"

	mock.ExpectQuery("UPDATE users SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(context.Background(), uuid.New(), models.UserUpdate{Bio: &bio})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestSearchUsers_ExcludesRequester(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	requesterID := uuid.New()
	other := newUser()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john", requesterID).
		WillReturnRows(userRow(other, now))

	found, err := repo.SearchUsers(ctx, "john", requesterID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].ID != other.ID {
		t.Fatalf("expected single match %s, got %v", other.ID, found)
	}
}

func TestSearchUsers_NoMatches(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userTestColumns))

	found, err := repo.SearchUsers(context.Background(), "zzz", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no matches, got %v", found)
	}
}
