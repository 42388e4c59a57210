package gerr

import "errors"

var (
	// ErrEmailTaken signals a storage-level unique constraint violation on
	// the email column of a waitlist table.
	ErrEmailTaken = errors.New("email already on the waitlist")

	// ErrMailApiLimitReached signals the mail provider rate limit, the
	// worker backs off until the next tick.
	ErrMailApiLimitReached = errors.New("mail api limit reached")

	// ErrNotFound is the typed absence result for single-row store lookups.
	ErrNotFound = errors.New("not found")
)
