package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"planner/config"
	"planner/database"
	"planner/routers"
	"planner/utils"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// The schema must be complete before anything is served
	if err := database.Initialize(cfg); err != nil {
		return fmt.Errorf("schema initialization: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("[DATABASE] Close error: %v", err)
		}
	}()

	scheduler, err := utils.StartMaintenanceScheduler(db, cfg.DBDriver, cfg.MaintenanceCron)
	if err != nil {
		return fmt.Errorf("start maintenance scheduler: %w", err)
	}

	app := routers.NewApp(cfg, db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if scheduler != nil {
			<-scheduler.Stop().Done()
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(cfg.Addr()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
