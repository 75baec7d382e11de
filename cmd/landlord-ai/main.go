package main

import (
	"log"

	"github.com/s0ph13d3f45w/landlord-ai/internal/app"
	"github.com/s0ph13d3f45w/landlord-ai/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
