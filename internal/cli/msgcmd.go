package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/flagx"
	"github.com/dmitrijs2005/samba/internal/services"
)

type messageFlags struct {
	Username string
	Password string
	To       string
	Send     string
	List     bool
}

func parseMessageFlags(args []string) (*messageFlags, *flag.FlagSet, error) {
	f := &messageFlags{}

	fs := flag.NewFlagSet("msgctl", flag.ContinueOnError)
	fs.StringVar(&f.Username, "u", "", "your username")
	fs.StringVar(&f.Password, "p", "", "your password")
	fs.StringVar(&f.To, "t", "", "recipient username")
	fs.StringVar(&f.Send, "s", "", "message to send")
	fs.BoolVar(&f.List, "l", false, "list messages")

	err := fs.Parse(flagx.FilterArgs(args, []string{"-u", "-p", "-t", "-s", "-l"}))
	return f, fs, err
}

// RunMessages dispatches the messaging command line. Unrecognized flag
// combinations print usage help.
func (a *App) RunMessages(ctx context.Context, args []string) int {
	f, fs, err := parseMessageFlags(args)
	if err != nil {
		return 2
	}

	switch {
	case f.Username != "" && f.Password != "" && f.List:
		return a.listMessages(ctx, f.Username, f.Password)
	case f.Username != "" && f.Password != "" && f.To != "" && f.Send != "":
		return a.sendMessage(ctx, f.Username, f.Password, f.To, f.Send)
	default:
		fs.SetOutput(a.out)
		fs.Usage()
		return 2
	}
}

// withMessageService opens the per-invocation connection and hands a
// MessageService to fn, closing the connection afterwards.
func (a *App) withMessageService(ctx context.Context, fn func(svc *services.MessageService) int) int {
	db, err := a.connect(ctx)
	if err != nil {
		a.fail(ctx, err)
		return 1
	}
	defer db.Close()

	return fn(services.NewMessageService(db, a.repos))
}

func (a *App) sendMessage(ctx context.Context, username, password, to, text string) int {
	return a.withMessageService(ctx, func(svc *services.MessageService) int {
		if _, err := svc.Send(ctx, username, password, to, text); err != nil {
			switch {
			case errors.Is(err, common.ErrorValidation):
				fmt.Fprintf(a.out, "Message too long! Max %d characters.\n", services.MaxMessageLength)
			case errors.Is(err, services.ErrRecipientNotFound):
				fmt.Fprintln(a.out, "Recipient does not exist.")
			case errors.Is(err, common.ErrorNotFound):
				fmt.Fprintln(a.out, "Sender does not exist.")
			case errors.Is(err, common.ErrorIncorrectPassword):
				fmt.Fprintln(a.out, "Incorrect password!")
			default:
				a.fail(ctx, err)
			}
			return 1
		}

		fmt.Fprintln(a.out, "Message sent.")
		return 0
	})
}

func (a *App) listMessages(ctx context.Context, username, password string) int {
	return a.withMessageService(ctx, func(svc *services.MessageService) int {
		items, err := svc.Inbox(ctx, username, password)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrorNotFound):
				fmt.Fprintln(a.out, "User does not exist.")
			case errors.Is(err, common.ErrorIncorrectPassword):
				fmt.Fprintln(a.out, "Incorrect password!")
			default:
				a.fail(ctx, err)
			}
			return 1
		}

		if len(items) == 0 {
			fmt.Fprintln(a.out, "No messages found.")
			return 0
		}

		for _, item := range items {
			fmt.Fprintf(a.out, "\nFrom: %s\n", item.From)
			fmt.Fprintf(a.out, "Date: %s\n", item.Date.Format(time.DateTime))
			fmt.Fprintf(a.out, "Message: %s\n", item.Text)
		}
		return 0
	})
}
