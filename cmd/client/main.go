package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkrasnovs/blogspace/internal/buildinfo"
	"github.com/dkrasnovs/blogspace/internal/client/cli"
	"github.com/dkrasnovs/blogspace/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
