package utils

import (
	"fmt"
	"log"

	"planner/config"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartMaintenanceScheduler runs store housekeeping on the given cron
// schedule. It returns nil without starting anything when schedule is empty.
// The caller stops the returned scheduler on shutdown.
func StartMaintenanceScheduler(db *gorm.DB, driver, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		log.Println("[MAINTENANCE] Scheduler disabled")
		return nil, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		log.Println("[MAINTENANCE] Running store maintenance...")
		if err := RunMaintenance(db, driver); err != nil {
			log.Printf("[MAINTENANCE] Error: %v", err)
			return
		}
		log.Println("[MAINTENANCE] Done")
	}); err != nil {
		return nil, fmt.Errorf("maintenance schedule %q: %w", schedule, err)
	}

	c.Start()
	log.Printf("[MAINTENANCE] Scheduler started - runs at %q", schedule)
	return c, nil
}

// RunMaintenance refreshes the query planner statistics of the store.
func RunMaintenance(db *gorm.DB, driver string) error {
	switch driver {
	case config.DriverSQLite:
		return db.Exec("PRAGMA optimize").Error
	case config.DriverPostgres:
		return db.Exec("ANALYZE").Error
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}
