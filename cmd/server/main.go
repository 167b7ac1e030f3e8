package main

import (
	"context"
	"log"
	"os"

	"github.com/scholarshipops/scholarshipops/internal/server"
	"github.com/scholarshipops/scholarshipops/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
