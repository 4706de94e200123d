package models

import "time"

// ViewToken is a single-redemption capability bound to one handle.
type ViewToken struct {
	// ID is the unguessable token identifier presented by the client.
	ID string
	// Handle is the file the token was issued for.
	Handle string
	// ExpiresAt is the absolute expiry; the token is dead at or after it.
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t *ViewToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
