package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS slot_configs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			year INT UNIQUE NOT NULL,
			days TEXT NOT NULL,
			slots TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS timetables (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			year INT NOT NULL,
			branch VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS timetable_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			timetable_id UUID NOT NULL REFERENCES timetables(id) ON DELETE CASCADE,
			day VARCHAR(16) NOT NULL,
			time_slot VARCHAR(32) NOT NULL,
			kind VARCHAR(16) NOT NULL,
			subject_name VARCHAR(255) NOT NULL DEFAULT '',
			teacher_id UUID,
			teacher_name VARCHAR(255) NOT NULL DEFAULT '',
			free_type VARCHAR(32),
			lab_group_id VARCHAR(64),
			batches TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (timetable_id, day, time_slot)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_teacher
			ON timetable_entries (teacher_id, day, time_slot)`,
		`CREATE INDEX IF NOT EXISTS idx_timetables_year_branch
			ON timetables (year, branch)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
