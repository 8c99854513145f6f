// Package users declares the persistence contract for user accounts.
package users

import (
	"context"

	"github.com/shopcore/authsvc/internal/server/models"
)

// Repository defines operations for creating and looking up users. The
// backing store enforces uniqueness on both email and user_id.
type Repository interface {
	// Create inserts a new user and returns it. A uniqueness violation on
	// email or user_id surfaces as a wrapped db error.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by email, returning common.ErrorNotFound
	// when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks a user up by its generated identifier, returning
	// common.ErrorNotFound when absent.
	GetByID(ctx context.Context, userID string) (*models.User, error)
}
