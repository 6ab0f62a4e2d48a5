package main

import (
	"context"
	"log"
	"os"

	"github.com/sharepad/sharepad/internal/app"
	"github.com/sharepad/sharepad/internal/buildinfo"
	"github.com/sharepad/sharepad/internal/cli"
	"github.com/sharepad/sharepad/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	a, err := app.New(ctx, cfg, nil)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	cli.NewApp(a.Router, a.Client, os.Stdout).Run(ctx)

}
