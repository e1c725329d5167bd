package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/samba/internal/dbx"
)

// RunInit bootstraps the database: it creates the configured database when
// absent and applies the embedded schema migrations. Re-running against an
// initialized database is safe.
func (a *App) RunInit(ctx context.Context) int {
	password, err := a.promptDBPassword()
	if err != nil {
		a.fail(ctx, err)
		return 1
	}

	if err := a.createDatabaseIfAbsent(ctx, password); err != nil {
		a.fail(ctx, err)
		return 1
	}

	db, err := dbx.Connect(ctx, a.config.DSN(password))
	if err != nil {
		a.fail(ctx, err)
		return 1
	}
	defer db.Close()

	if err := a.repos.RunMigrations(ctx, db.DB); err != nil {
		a.fail(ctx, err)
		return 1
	}

	fmt.Fprintln(a.out, "Database schema is up to date.")
	return 0
}

// createDatabaseIfAbsent connects to the maintenance database and issues
// CREATE DATABASE when the configured one does not exist. CREATE DATABASE
// cannot run inside a transaction, so this is a plain statement on an
// auto-commit connection.
func (a *App) createDatabaseIfAbsent(ctx context.Context, password string) error {
	admin, err := dbx.Connect(ctx, a.config.AdminDSN(password))
	if err != nil {
		return err
	}
	defer admin.Close()

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := admin.GetContext(ctx, &exists, query, a.config.DatabaseName); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if exists {
		fmt.Fprintf(a.out, "Database '%s' already exists.\n", a.config.DatabaseName)
		return nil
	}

	if _, err := admin.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %q`, a.config.DatabaseName)); err != nil {
		return fmt.Errorf("create database: %w", err)
	}

	fmt.Fprintf(a.out, "Database '%s' created successfully.\n", a.config.DatabaseName)
	return nil
}
