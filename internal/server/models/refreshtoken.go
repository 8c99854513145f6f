package models

import "time"

// RefreshToken is the single active refresh-token record of a user.
// ExpiresAt is the token's exp claim in epoch seconds. Active is flipped to
// false by the soft-revoke path; rotation replaces the whole record.
type RefreshToken struct {
	UserID    string
	Token     string
	Active    bool
	ExpiresAt int64
	CreatedAt time.Time
}
