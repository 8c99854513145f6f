package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopcore/authsvc/internal/common"
	"github.com/shopcore/authsvc/internal/dbx"
	"github.com/shopcore/authsvc/internal/server/models"
)

// PostgresRepository implements the refresh-token store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Store inserts or replaces the user's record. The upsert keyed on user_id
// rotates the previous token atomically; no delete-then-insert window.
func (r *PostgresRepository) Store(ctx context.Context, userID string, token string, expiresAt int64) (*models.RefreshToken, error) {
	query := `
		INSERT INTO refresh_tokens (user_id, token, active, expires_at)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token, active = TRUE, expires_at = EXCLUDED.expires_at, created_at = now()
		RETURNING user_id, token, active, expires_at, created_at
	`
	record := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, userID, token, expiresAt).
		Scan(&record.UserID, &record.Token, &record.Active, &record.ExpiresAt, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

// FindByUser returns the record for userID, or common.ErrorNotFound.
func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) (*models.RefreshToken, error) {
	query := `
		SELECT user_id, token, active, expires_at, created_at
		FROM refresh_tokens
		WHERE user_id = $1
	`
	record := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&record.UserID, &record.Token, &record.Active, &record.ExpiresAt, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

// DeleteAllForUser removes every record for userID.
func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE user_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

// Deactivate soft-revokes the user's record.
func (r *PostgresRepository) Deactivate(ctx context.Context, userID string) (int64, error) {
	query := `
		UPDATE refresh_tokens
		SET active = FALSE
		WHERE user_id = $1
	`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
