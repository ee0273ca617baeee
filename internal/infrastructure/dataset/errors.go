package dataset

import crerr "github.com/cockroachdb/errors"

// Load-time failures are fatal for the session and surfaced to the caller,
// unlike per-row value coercion which is deliberately lenient.
var (
	// ErrMissingSource marks a source file that cannot be opened.
	ErrMissingSource = crerr.New("dataset source missing")
	// ErrMalformedSchema marks a source whose header lacks a required column.
	ErrMalformedSchema = crerr.New("dataset schema malformed")
)
