package stats

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy of the contribution pipeline. Validation and upstream
// failures are terminal for the request and never touch the store.
var (
	// ErrSecretNotConfigured means the server has no ingestion secret at all.
	// Operator action required, the caller cannot fix this.
	ErrSecretNotConfigured = errors.New("github stats secret not configured on server")

	// ErrUnauthorized means the caller's secret header was absent or wrong.
	ErrUnauthorized = errors.New("invalid or missing X-GitHub-Stats-Secret header")

	// ErrNotFound means the requested year was never ingested.
	ErrNotFound = errors.New("github stats not found")

	// ErrUpstream wraps failures of the contribution provider. Safe to retry
	// later, the stored data is untouched.
	ErrUpstream = errors.New("github upstream fetch failed")
)

// CooldownError is returned when an ingestion is triggered again before the
// cooldown window since the last success has passed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("Rate limit: Please wait %d seconds before next ingestion", int(e.Remaining.Seconds()))
}
