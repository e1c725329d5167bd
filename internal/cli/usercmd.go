package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/flagx"
	"github.com/dmitrijs2005/samba/internal/services"
)

type userFlags struct {
	Username string
	Password string
	NewPass  string
	List     bool
	Delete   bool
	Edit     bool
}

func parseUserFlags(args []string) (*userFlags, *flag.FlagSet, error) {
	f := &userFlags{}

	fs := flag.NewFlagSet("userctl", flag.ContinueOnError)
	fs.StringVar(&f.Username, "u", "", "username")
	fs.StringVar(&f.Password, "p", "", "password")
	fs.StringVar(&f.NewPass, "n", "", "new password")
	fs.BoolVar(&f.List, "l", false, "list all users")
	fs.BoolVar(&f.Delete, "d", false, "delete user")
	fs.BoolVar(&f.Edit, "e", false, "edit user password")

	err := fs.Parse(flagx.FilterArgs(args, []string{"-u", "-p", "-n", "-l", "-d", "-e"}))
	return f, fs, err
}

// RunUser dispatches the user-management command line. Unrecognized flag
// combinations print usage help.
func (a *App) RunUser(ctx context.Context, args []string) int {
	f, fs, err := parseUserFlags(args)
	if err != nil {
		return 2
	}

	switch {
	case f.List:
		return a.listUsers(ctx)
	case f.Username != "" && f.Password != "" && f.Delete:
		return a.deleteUser(ctx, f.Username, f.Password)
	case f.Username != "" && f.Password != "" && f.Edit && f.NewPass != "":
		return a.editPassword(ctx, f.Username, f.Password, f.NewPass)
	case f.Username != "" && f.Password != "" && !f.Edit && !f.Delete && f.NewPass == "":
		return a.createUser(ctx, f.Username, f.Password)
	default:
		fs.SetOutput(a.out)
		fs.Usage()
		return 2
	}
}

// withAccountService opens the per-invocation connection and hands an
// AccountService to fn, closing the connection afterwards.
func (a *App) withAccountService(ctx context.Context, fn func(svc *services.AccountService) int) int {
	db, err := a.connect(ctx)
	if err != nil {
		a.fail(ctx, err)
		return 1
	}
	defer db.Close()

	return fn(services.NewAccountService(db, a.repos))
}

func (a *App) createUser(ctx context.Context, username, password string) int {
	return a.withAccountService(ctx, func(svc *services.AccountService) int {
		if _, err := svc.Register(ctx, username, password); err != nil {
			switch {
			case errors.Is(err, common.ErrorValidation):
				fmt.Fprintln(a.out, "Password must be at least 8 characters long.")
			case errors.Is(err, common.ErrorAlreadyExists):
				fmt.Fprintln(a.out, "User already exists.")
			default:
				a.fail(ctx, err)
			}
			return 1
		}

		fmt.Fprintf(a.out, "User '%s' created successfully.\n", username)
		return 0
	})
}

func (a *App) editPassword(ctx context.Context, username, password, newPassword string) int {
	return a.withAccountService(ctx, func(svc *services.AccountService) int {
		if err := svc.ChangePassword(ctx, username, password, newPassword); err != nil {
			switch {
			case errors.Is(err, common.ErrorValidation):
				fmt.Fprintln(a.out, "New password must be at least 8 characters long.")
			case errors.Is(err, common.ErrorNotFound):
				fmt.Fprintln(a.out, "User does not exist.")
			case errors.Is(err, common.ErrorIncorrectPassword):
				fmt.Fprintln(a.out, "Incorrect password!")
			default:
				a.fail(ctx, err)
			}
			return 1
		}

		fmt.Fprintln(a.out, "Password updated.")
		return 0
	})
}

func (a *App) deleteUser(ctx context.Context, username, password string) int {
	return a.withAccountService(ctx, func(svc *services.AccountService) int {
		if err := svc.Delete(ctx, username, password); err != nil {
			switch {
			case errors.Is(err, common.ErrorNotFound):
				fmt.Fprintln(a.out, "User does not exist.")
			case errors.Is(err, common.ErrorIncorrectPassword):
				fmt.Fprintln(a.out, "Incorrect password!")
			case errors.Is(err, common.ErrorConflict):
				fmt.Fprintln(a.out, "Cannot delete user: messages still reference this user.")
			default:
				a.fail(ctx, err)
			}
			return 1
		}

		fmt.Fprintf(a.out, "User '%s' deleted.\n", username)
		return 0
	})
}

func (a *App) listUsers(ctx context.Context) int {
	return a.withAccountService(ctx, func(svc *services.AccountService) int {
		users, err := svc.List(ctx)
		if err != nil {
			a.fail(ctx, err)
			return 1
		}

		for _, u := range users {
			fmt.Fprintf(a.out, "ID: %d, Username: %s\n", u.ID, u.Username)
		}
		return 0
	})
}
