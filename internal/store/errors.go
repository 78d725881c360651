package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match an account
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when no profile row has the given id.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileAlreadyExists is returned when a profile for the account was
	// already inserted.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrDoctorNotFound is returned when a directory lookup misses.
	ErrDoctorNotFound = errors.New("doctor was not found")

	// ErrSlotTaken is returned when the doctor's slot on that date already
	// holds a booked appointment.
	ErrSlotTaken = errors.New("appointment slot is already taken")

	// ErrAppointmentNotFound is returned when a cancellation targets an
	// appointment that does not exist or belongs to someone else.
	ErrAppointmentNotFound = errors.New("appointment was not found")

	// ErrKeyNotFound is returned by the client-local key/value storage when
	// the key is absent.
	ErrKeyNotFound = errors.New("key not found in local storage")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
