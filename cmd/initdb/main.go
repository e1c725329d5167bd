// initdb bootstraps the samba database: it creates the database when
// absent and applies the embedded schema migrations.
package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/samba/internal/buildinfo"
	"github.com/dmitrijs2005/samba/internal/cli"
	"github.com/dmitrijs2005/samba/internal/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	os.Exit(app.RunInit(ctx))
}
