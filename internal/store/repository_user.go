package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/xiecchuot/player-server/internal/logger"
	"github.com/xiecchuot/player-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, device allow-list maintenance, and
// profile updates against the "users" and "allowed_devices" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full account row into a models.User. The allow-list is
// loaded separately; here only the embedded registered device and scalar
// columns are populated.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Profile.DisplayName,
		&user.Profile.Bio,
		&user.Profile.Avatar,
		&user.Profile.SocialMedia.Twitter,
		&user.Profile.SocialMedia.Instagram,
		&user.Profile.SocialMedia.YouTube,
		&user.Preferences.Volume,
		&user.Preferences.LoopEnabled,
		&user.RegisteredDevice.DeviceID,
		&user.RegisteredDevice.DeviceName,
		&user.RegisteredDevice.RegisteredAt,
		&user.CreatedAt,
	)

	return user, err
}

// CreateUser persists a new account and the registered device's allow-list
// entry in a single transaction, so either the complete record lands or
// nothing does.
//
// Error handling:
//   - unique_violation on the username constraint → [ErrUsernameTaken].
//   - unique_violation on the email constraint → [ErrEmailTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Profile.DisplayName,
		user.Profile.Bio,
		user.Profile.Avatar,
		user.Profile.SocialMedia.Twitter,
		user.Profile.SocialMedia.Instagram,
		user.Profile.SocialMedia.YouTube,
		user.Preferences.Volume,
		user.Preferences.LoopEnabled,
		user.RegisteredDevice.DeviceID,
		user.RegisteredDevice.DeviceName,
	)

	if err := row.Scan(&user.RegisteredDevice.RegisteredAt, &user.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: inserting user failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if postgresConstraint(err) == "users_email_key" {
				return models.User{}, ErrEmailTaken
			}
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// the registered device is the first entry of the allow-list
	if _, err := tx.ExecContext(ctx, createAllowedDevice, user.ID, user.RegisteredDevice.DeviceID, user.RegisteredDevice.DeviceName); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting allowed device failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	user.AllowedDevices = []string{user.RegisteredDevice.DeviceID}

	return user, nil
}

// FindUserByUsername retrieves an account record by its unique username,
// including the device allow-list.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves an account record by its id, including the device
// allow-list. Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	foundUser.AllowedDevices, err = r.allowedDevices(ctx, foundUser.ID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: allow-list lookup failed")
		return models.User{}, err
	}

	return foundUser, nil
}

func (r *userRepository) allowedDevices(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, getAllowedDevices, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var deviceIDs []string
	for rows.Next() {
		var deviceID string
		if err := rows.Scan(&deviceID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		deviceIDs = append(deviceIDs, deviceID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deviceIDs, nil
}

// AddAllowedDevice appends deviceID to the account's allow-list. The insert
// carries ON CONFLICT DO NOTHING, so granting access to an already-allowed
// device is a no-op.
func (r *userRepository) AddAllowedDevice(ctx context.Context, userID uuid.UUID, deviceID, deviceName string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createAllowedDevice, userID, deviceID, deviceName); err != nil {
		log.Err(err).Str("func", "*userRepository.AddAllowedDevice").Msg("error: inserting allowed device failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// UpdateUser builds a dynamic UPDATE from the non-nil fields of update and
// returns the refreshed account record. Returns [ErrNothingToUpdate] when no
// field is set and [ErrNoUserWasFound] when the account does not exist.
func (r *userRepository) UpdateUser(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)
	assigned := false

	if update.DisplayName != nil {
		builder = builder.Set("display_name", *update.DisplayName)
		assigned = true
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
		assigned = true
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
		assigned = true
	}
	if update.SocialMedia != nil {
		builder = builder.
			Set("twitter", update.SocialMedia.Twitter).
			Set("instagram", update.SocialMedia.Instagram).
			Set("youtube", update.SocialMedia.YouTube)
		assigned = true
	}
	if update.Volume != nil {
		builder = builder.Set("volume", *update.Volume)
		assigned = true
	}
	if update.LoopEnabled != nil {
		builder = builder.Set("loop_enabled", *update.LoopEnabled)
		assigned = true
	}

	if !assigned {
		return models.User{}, ErrNothingToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updatedUser, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	updatedUser.AllowedDevices, err = r.allowedDevices(ctx, updatedUser.ID)
	if err != nil {
		return models.User{}, err
	}

	return updatedUser, nil
}

// SearchUsers returns up to 50 accounts whose username contains query,
// excluding the requesting account. Allow-lists are not loaded; search
// results only feed the public user listing.
func (r *userRepository) SearchUsers(ctx context.Context, query string, excludeID uuid.UUID) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, searchUsers, query, excludeID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsers").Msg("error: user search failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}
