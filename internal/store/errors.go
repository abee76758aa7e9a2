package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage is returned when writing or reading an artifact fails at
	// the I/O or index level. A save that returns ErrStorage has created no
	// record and left no partial file behind; callers may retry the save as
	// a whole.
	ErrStorage = errors.New("artifact storage failed")

	// ErrRecordNotFound is returned when a lookup targets an artifact id
	// that does not exist in the index.
	ErrRecordNotFound = errors.New("artifact record was not found")

	// ErrMalformedArtifact is returned when an artifact file on disk is too
	// short or carries an unknown algorithm tag, so it cannot be parsed back
	// into its nonce and ciphertext parts.
	ErrMalformedArtifact = errors.New("artifact file is malformed")
)

// Low-level database operation errors, wrapped by the repository when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// artifact index fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
