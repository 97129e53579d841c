// Command initdb provisions the schema and exits. The server does the same
// on startup; this is for preparing a store ahead of time.
package main

import (
	"log"

	"planner/config"
	"planner/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Initialize(cfg); err != nil {
		log.Fatalf("Schema initialization failed: %v", err)
	}
	log.Printf("Schema ready in %s store", cfg.DBDriver)
}
