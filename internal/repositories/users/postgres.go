// Package users provides the PostgreSQL-backed repository for user records.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/models"
)

// Postgres error codes surfaced as sentinel errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// PostgresRepository implements user storage over a dbx.DBTX
// (*sqlx.DB or *sqlx.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, hashed_password FROM users WHERE username = $1`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, hashed_password FROM users WHERE id = $1`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetAll returns every user in store order. Ordering is not part of the
// contract.
func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, username, hashed_password FROM users`

	var result []*models.User
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Save inserts the user when it has no store identity yet, assigning the new
// identity back onto the object; otherwise it updates username and credential
// for the existing row. A username collision on insert is returned as
// common.ErrorAlreadyExists so callers can report it even past a racy
// pre-check.
func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	if !user.Saved() {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *PostgresRepository) insert(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, hashed_password) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, user.Username, user.HashedPassword).Scan(&user.ID)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) update(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET username = $1, hashed_password = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, user.Username, user.HashedPassword, user.ID)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Delete removes the row by identity and resets the in-memory identity to
// the unsaved sentinel. Deleting an unsaved user is a no-op. A foreign-key
// violation (messages still reference the user) is returned as
// common.ErrorConflict.
func (r *PostgresRepository) Delete(ctx context.Context, user *models.User) error {
	if !user.Saved() {
		return nil
	}

	query := `DELETE FROM users WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, user.ID); err != nil {
		if isPgError(err, codeForeignKeyViolation) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	user.ID = models.UnsavedID
	return nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
