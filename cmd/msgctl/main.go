// msgctl sends messages between samba users and lists a user's inbox.
package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/samba/internal/cli"
	"github.com/dmitrijs2005/samba/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	os.Exit(app.RunMessages(ctx, os.Args[1:]))
}
