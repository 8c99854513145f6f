package main

import (
	"context"
	"log"

	"github.com/shopcore/authsvc/internal/server"
	"github.com/shopcore/authsvc/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run error: %v", err)
	}
}
