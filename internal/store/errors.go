package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a mutation targets a record that
	// does not exist or is owned by a different user. The two cases are
	// deliberately indistinguishable so that callers cannot probe for the
	// existence of other users' records.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidField is returned when an update names a field outside the
	// collection's allow-list. The allow-list is a security boundary: only
	// the listed columns may ever be written through field updates.
	ErrInvalidField = errors.New("field is not updatable")

	// ErrEmptyCollection is returned by random sampling when the user's
	// collection holds no records. Callers treat it as a normal state, not
	// a failure.
	ErrEmptyCollection = errors.New("collection is empty")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
