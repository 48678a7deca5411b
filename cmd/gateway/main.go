package main

import (
	"log"

	"portal-gateway/internal/bootstrap"
	"portal-gateway/internal/shared/config"
	"portal-gateway/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting gateway on %s (upstream %s)", addr, cfg.UpstreamBaseURL)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
