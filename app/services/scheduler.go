package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 2:30 AM
			if now.Hour() == 2 && now.Minute() == 30 {
				log.Println("Triggering scheduled tasks [02:30]...")

				if err := PurgeDeletedTimetables(db); err != nil {
					log.Printf("Error purging deleted timetables: %v", err)
				}
			}
		}
	}()
}

// PurgeDeletedTimetables permanently removes timetables soft-deleted
// more than 30 days ago, along with their entries.
func PurgeDeletedTimetables(db *sql.DB) error {
	result, err := db.Exec(`
		DELETE FROM timetables
		WHERE is_active = false AND updated_at < NOW() - INTERVAL '30 days'
	`)
	if err != nil {
		return err
	}

	if count, err := result.RowsAffected(); err == nil && count > 0 {
		log.Printf("Purged %d soft-deleted timetables", count)
	}

	// Entries whose timetable is gone serve nothing.
	if _, err := db.Exec(`
		DELETE FROM timetable_entries
		WHERE timetable_id NOT IN (SELECT id FROM timetables)
	`); err != nil {
		return err
	}

	return nil
}
