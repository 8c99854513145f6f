// Package refreshtokens declares the server-side repository contract for the
// refresh-token store. The store holds at most one record per user.
package refreshtokens

import (
	"context"

	"github.com/shopcore/authsvc/internal/server/models"
)

// Repository defines operations for storing, retrieving, and revoking
// refresh-token records keyed by user.
type Repository interface {
	// FindByUser returns the user's refresh-token record, or
	// common.ErrorNotFound when the user has none.
	FindByUser(ctx context.Context, userID string) (*models.RefreshToken, error)

	// Store saves the user's refresh token with its expiry (epoch seconds),
	// replacing any previous record in a single statement so the
	// one-record-per-user invariant holds even under concurrent logins.
	Store(ctx context.Context, userID string, token string, expiresAt int64) (*models.RefreshToken, error)

	// DeleteAllForUser removes every record for the user and returns the
	// number removed. Deleting for a user with no records is not an error.
	DeleteAllForUser(ctx context.Context, userID string) (int64, error)

	// Deactivate flips the user's record to inactive without deleting it
	// and returns the number of affected records.
	Deactivate(ctx context.Context, userID string) (int64, error)
}
