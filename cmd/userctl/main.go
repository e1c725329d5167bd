// userctl manages the accounts of the samba messaging database: create,
// list, delete and change passwords.
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

	os.Exit(app.RunUser(ctx, os.Args[1:]))
}
