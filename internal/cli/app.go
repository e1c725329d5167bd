// Package cli implements the command front ends of samba: flag parsing,
// the database password prompt and the dispatch of user-management,
// messaging and bootstrap actions. Human-readable results go to stdout;
// structured diagnostics go to the logger.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/dmitrijs2005/samba/internal/config"
	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/logging"
	"github.com/dmitrijs2005/samba/internal/repositories/repomanager"
)

// readPassword is a test seam for term.ReadPassword. In tests it can be
// replaced with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// App carries the shared state of one command invocation.
type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	out    io.Writer
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		logger: logging.NewDefault(),
		repos:  repomanager.NewPostgresRepositoryManager(),
		out:    os.Stdout,
	}
}

// promptDBPassword asks for the database administrator password without
// echoing it. This credential belongs to the store, not to any message
// user, and is requested once per invocation.
func (a *App) promptDBPassword() (string, error) {
	fmt.Fprint(a.out, "Enter your PostgreSQL password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// connect prompts for the admin password and opens the per-invocation
// database handle. The caller owns the handle and closes it on exit.
func (a *App) connect(ctx context.Context) (*sqlx.DB, error) {
	password, err := a.promptDBPassword()
	if err != nil {
		return nil, err
	}
	return dbx.Connect(ctx, a.config.DSN(password))
}

// fail reports an unexpected failure: a short line for the user, the
// underlying error for the log. The command aborts, the process does not
// crash.
func (a *App) fail(ctx context.Context, err error) {
	a.logger.Error(ctx, "command failed", "error", err)
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
