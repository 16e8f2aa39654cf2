package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNIMAlreadyExists is returned when a record with the same NIM is
	// already stored.
	ErrNIMAlreadyExists = errors.New("nim already exists")

	// ErrStudentNotFound is returned when the targeted id does not exist.
	ErrStudentNotFound = errors.New("student was not found")

	// ErrUnsupportedDSN is returned when the DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported dsn")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning rows fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan student rows")
)
