package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/OOlexandr/Contacts/internal/app"
	"github.com/OOlexandr/Contacts/internal/config"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
