package main

import (
	"log"

	"lumina_lms_backend/internal/app"
	"lumina_lms_backend/internal/config"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	application.Run()
}
