// Package messages provides the PostgreSQL-backed repository for the
// directed messages exchanged between users.
package messages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/models"
)

// PostgresRepository implements message storage over a dbx.DBTX
// (*sqlx.DB or *sqlx.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetAll returns every message in store order.
func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Message, error) {
	query := `SELECT id, from_id, to_id, creation_date, text FROM messages`

	var result []*models.Message
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Save inserts the message when it has no store identity yet, populating the
// assigned identity and creation date back onto the object. For saved
// messages only the text is rewritten; creation_date is set exactly once.
func (r *PostgresRepository) Save(ctx context.Context, msg *models.Message) error {
	if !msg.Saved() {
		return r.insert(ctx, msg)
	}
	return r.update(ctx, msg)
}

func (r *PostgresRepository) insert(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (from_id, to_id, creation_date, text)
		VALUES ($1, $2, CURRENT_TIMESTAMP, $3)
		RETURNING id, creation_date`

	err := r.db.QueryRowContext(ctx, query, msg.FromID, msg.ToID, msg.Text).
		Scan(&msg.ID, &msg.CreationDate)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) update(ctx context.Context, msg *models.Message) error {
	query := `UPDATE messages SET text = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, msg.Text, msg.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
