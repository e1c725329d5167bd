// Package dbx provides tiny DB abstractions shared by the repositories:
// a minimal executor interface (DBTX) implemented by both *sqlx.DB and
// *sqlx.Tx, and a connect helper for the pgx stdlib driver.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// DBTX is the subset of sqlx used by our repos. Both *sqlx.DB and *sqlx.Tx
// satisfy this interface, so repositories can run against either a plain
// connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

const pingTimeout = 5 * time.Second

// Connect opens a pgx-backed sqlx handle and verifies it with a ping.
// Each command invocation owns exactly one handle and closes it on exit.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// one short-lived CLI invocation needs no large pool
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
