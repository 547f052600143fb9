package main

import (
	"context"
	"log"
	"os"

	"github.com/dkrasnovs/blogspace/internal/buildinfo"
	"github.com/dkrasnovs/blogspace/internal/server"
	"github.com/dkrasnovs/blogspace/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
