package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrCredentialAlreadyExists is returned when the owner already has a
	// credential or the account identifier belongs to any owner.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when no credential matches the
	// owner or account identifier.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrStorefrontNotFound is returned when no cached storefront exists for
	// the requested (owner, date).
	ErrStorefrontNotFound = errors.New("cached storefront not found")

	// ErrSubscriptionNotFound is returned when the owner has no reminder
	// subscription row.
	ErrSubscriptionNotFound = errors.New("reminder subscription not found")

	// ErrSchemaNotReady is returned by [DB.CheckSchema] when a required table
	// cannot be queried.
	ErrSchemaNotReady = errors.New("database schema is not ready")

	// ErrUnsupportedDriver is returned for an unknown database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors wrapped by repository methods.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
