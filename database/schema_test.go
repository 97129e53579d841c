package database_test

import (
	"path/filepath"
	"testing"

	"planner/config"
	"planner/database"
	"planner/database/databasetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := databasetest.Open(t)

	require.NoError(t, db.Exec(`INSERT INTO courses (name, type) VALUES ('Physics', 'BSc')`).Error)

	require.NoError(t, database.Migrate(db, config.DriverSQLite))

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM courses`).Scan(&count).Error)
	assert.EqualValues(t, 1, count, "re-running the schema must keep existing rows")
}

func TestMigrateCreatesAllRelations(t *testing.T) {
	db := databasetest.Open(t)

	for _, table := range []string{"users", "courses", "modules", "class_schedules", "assessments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	db := databasetest.Open(t)
	assert.Error(t, database.Migrate(db, "oracle"))
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := databasetest.Open(t)

	err := db.Exec(`INSERT INTO modules (name, code, course_id) VALUES ('Math', 'MATH101', 42)`).Error
	assert.Error(t, err, "a dangling course_id must be rejected")
}

func TestInitializeWritesSchemaToFile(t *testing.T) {
	cfg := databasetest.Config()
	cfg.DBName = filepath.Join(t.TempDir(), "planner.sqlite")

	require.NoError(t, database.Initialize(cfg))
	// a second run against the same file is a no-op
	require.NoError(t, database.Initialize(cfg))

	db, err := database.Open(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	assert.True(t, db.Migrator().HasTable("assessments"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := databasetest.Config()
	cfg.DBDriver = "oracle"

	_, err := database.Open(cfg)
	assert.Error(t, err)
}
