// Package dictionary wraps external word-lookup services behind a single
// Lookup contract, with a caching gateway that fails closed when a backend
// is down but keeps the failure distinguishable from a plain invalid word.
package dictionary

import (
	"context"
	"errors"
)

// Entry is the result of a word lookup. Valid reports lexical validity;
// an invalid word is a normal Entry, not an error.
type Entry struct {
	Word       string
	Valid      bool
	Definition string
}

// ErrLookupUnavailable means the backing service could not answer at all:
// transport failure, timeout, or a server-side error. Callers can retry a
// turn that failed this way; a word the service rejected cannot be retried.
var ErrLookupUnavailable = errors.New("dictionary lookup unavailable")

// Lookup is the provider contract. Implementations must be safe for
// concurrent use; the session issues the lookups for one turn in parallel.
type Lookup interface {
	// Lookup checks one word. It returns an Entry with Valid=false for a
	// word the dictionary does not accept, and an error wrapping
	// ErrLookupUnavailable when the service cannot answer.
	Lookup(ctx context.Context, word string) (*Entry, error)
	// Name identifies the provider for logging and display.
	Name() string
}
