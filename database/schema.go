package database

import (
	"fmt"
	"log"

	"planner/config"

	"gorm.io/gorm"
)

// sqliteSchema is applied in order. SQLite accepts the forward reference from
// users to courses, so the circular pair needs no second pass.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		middle_names TEXT,
		last_name TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		address TEXT,
		course_id INTEGER,
		FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		user_id INTEGER,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS modules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		credits INTEGER,
		course_id INTEGER,
		FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS class_schedules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day_of_week TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		location TEXT,
		module_id INTEGER,
		FOREIGN KEY (module_id) REFERENCES modules(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS assessments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		due_date TEXT NOT NULL,
		module_id INTEGER,
		FOREIGN KEY (module_id) REFERENCES modules(id) ON DELETE CASCADE
	)`,
}

// postgresSchema creates users before courses exists, then attaches the
// users.course_id constraint once both tables are in place.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		middle_names TEXT,
		last_name TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		address TEXT,
		course_id BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		user_id BIGINT REFERENCES users(id) ON DELETE CASCADE
	)`,
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints
			WHERE table_name = 'users'
			AND constraint_name = 'fk_users_course'
		) THEN
			ALTER TABLE users ADD CONSTRAINT fk_users_course
				FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE SET NULL;
		END IF;
	END $$`,
	`CREATE TABLE IF NOT EXISTS modules (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		credits INTEGER,
		course_id BIGINT REFERENCES courses(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS class_schedules (
		id BIGSERIAL PRIMARY KEY,
		day_of_week TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		location TEXT,
		module_id BIGINT REFERENCES modules(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS assessments (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		due_date TEXT NOT NULL,
		module_id BIGINT REFERENCES modules(id) ON DELETE CASCADE
	)`,
}

// Migrate ensures every relation exists. It never drops or alters existing
// data, so running it against an initialized store is a no-op.
func Migrate(db *gorm.DB, driver string) error {
	var statements []string
	switch driver {
	case config.DriverSQLite:
		statements = sqliteSchema
	case config.DriverPostgres:
		statements = postgresSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	log.Println("[SCHEMA] Running Migrations...")
	for i, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	log.Println("[SCHEMA] Migrations completed successfully.")
	return nil
}

// Initialize provisions the schema on a dedicated connection and closes it
// before returning, so the serving process starts against a complete schema.
func Initialize(cfg *config.Config) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}
	if err := Migrate(db, cfg.DBDriver); err != nil {
		_ = Close(db)
		return err
	}
	return Close(db)
}
