package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new account
	// fails because an account with the same username already exists.
	// The uniqueness check is the database constraint itself, so two
	// concurrent registrations can never both pass it.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when an attempt to register a new account
	// fails because the email address is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one account record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTrackNotFound is returned when a query or delete targets a track
	// (identified by track id and owner id) that does not exist.
	ErrTrackNotFound = errors.New("track was not found")

	// ErrPlaylistNotFound is returned when a playlist lookup or update
	// targets a playlist that does not exist or belongs to another user.
	ErrPlaylistNotFound = errors.New("playlist was not found")

	// ErrNothingToUpdate is returned when an update request carries no
	// updatable fields.
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrSelfFollow is returned when an account attempts to follow itself.
	// The check constraint on the follows table backs this up.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
