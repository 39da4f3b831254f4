package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// ListTimetables returns active timetables without their entries.
// year 0 and branch "" disable the respective filter.
func ListTimetables(db *sql.DB, year int, branch string) ([]*models.Timetable, error) {
	query := `SELECT id, name, year, branch, is_active, created_at, updated_at
			  FROM timetables
			  WHERE is_active = true
			  AND ($1 = 0 OR year = $1)
			  AND ($2 = '' OR branch = $2)
			  ORDER BY year, branch, name`

	rows, err := db.Query(query, year, branch)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timetables []*models.Timetable
	for rows.Next() {
		t := &models.Timetable{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Year, &t.Branch, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			continue
		}
		timetables = append(timetables, t)
	}
	return timetables, nil
}

// GetTimetableByID retrieves one active timetable with its entries.
func GetTimetableByID(db *sql.DB, timetableID string) (*models.Timetable, error) {
	t := &models.Timetable{}
	query := `SELECT id, name, year, branch, is_active, created_at, updated_at
			  FROM timetables WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, timetableID).Scan(
		&t.ID, &t.Name, &t.Year, &t.Branch, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timetable not found")
		}
		return nil, err
	}

	entries, err := GetTimetableEntries(db, timetableID)
	if err != nil {
		return nil, err
	}
	t.Entries = entries
	return t, nil
}

// GetTimetableEntries loads the saved entries of one timetable.
func GetTimetableEntries(db *sql.DB, timetableID string) ([]models.TimetableEntry, error) {
	query := `SELECT id, timetable_id, day, time_slot, kind, subject_name,
				  teacher_id, teacher_name, free_type, lab_group_id, batches,
				  created_at, updated_at
			  FROM timetable_entries
			  WHERE timetable_id = $1
			  ORDER BY day, time_slot`

	rows, err := db.Query(query, timetableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.TimetableEntry, error) {
	entries := make([]models.TimetableEntry, 0)
	for rows.Next() {
		var entry models.TimetableEntry
		var teacherID, freeType, labGroupID sql.NullString
		var batchesJSON string

		if err := rows.Scan(
			&entry.ID, &entry.TimetableID, &entry.Day, &entry.TimeSlot, &entry.Kind,
			&entry.SubjectName, &teacherID, &entry.TeacherName, &freeType,
			&labGroupID, &batchesJSON, &entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning timetable entry: %v", err)
			continue
		}

		if teacherID.Valid {
			entry.TeacherID = &teacherID.String
		}
		if freeType.Valid {
			entry.FreeType = &freeType.String
		}
		if labGroupID.Valid {
			entry.LabGroupID = &labGroupID.String
		}
		if batchesJSON != "" && batchesJSON != "[]" {
			if err := json.Unmarshal([]byte(batchesJSON), &entry.Batches); err != nil {
				log.Printf("Error parsing batches for entry %s: %v", entry.ID, err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CreateTimetable inserts a new empty timetable.
func CreateTimetable(db *sql.DB, t *models.Timetable) error {
	query := `INSERT INTO timetables (name, year, branch, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, t.Name, t.Year, t.Branch).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create timetable: %v", err)
	}
	t.IsActive = true
	return nil
}

// SaveTimetableEntries replaces a timetable's entries inside one
// transaction: delete existing rows, reinsert the submitted grid.
func SaveTimetableEntries(db *sql.DB, timetableID string, entries []models.TimetableEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM timetable_entries WHERE timetable_id = $1", timetableID); err != nil {
		return fmt.Errorf("failed to clear existing entries: %v", err)
	}

	query := `INSERT INTO timetable_entries
				(id, timetable_id, day, time_slot, kind, subject_name, teacher_id,
				 teacher_name, free_type, lab_group_id, batches, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`

	for i, entry := range entries {
		batchesJSON, err := json.Marshal(entry.Batches)
		if err != nil {
			return fmt.Errorf("failed to encode batches for entry %d: %v", i, err)
		}

		var teacherID, freeType, labGroupID interface{}
		if entry.TeacherID != nil && *entry.TeacherID != "" {
			teacherID = *entry.TeacherID
		}
		if entry.FreeType != nil && *entry.FreeType != "" {
			freeType = *entry.FreeType
		}
		if entry.LabGroupID != nil && *entry.LabGroupID != "" {
			labGroupID = *entry.LabGroupID
		}

		if _, err := tx.Exec(query,
			uuid.NewString(), timetableID, entry.Day, entry.TimeSlot, entry.Kind, entry.SubjectName,
			teacherID, entry.TeacherName, freeType, labGroupID, string(batchesJSON),
		); err != nil {
			return fmt.Errorf("failed to insert entry %d: %v", i, err)
		}
	}

	if _, err := tx.Exec("UPDATE timetables SET updated_at = NOW() WHERE id = $1", timetableID); err != nil {
		return fmt.Errorf("failed to touch timetable: %v", err)
	}

	return tx.Commit()
}

// SoftDeleteTimetable deactivates a timetable (sets is_active = false).
func SoftDeleteTimetable(db *sql.DB, timetableID string) error {
	result, err := db.Exec(
		`UPDATE timetables SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`,
		timetableID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete timetable: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("timetable not found or already deleted")
	}
	return nil
}

// GetOtherTimetables loads every active timetable except the one being
// edited, entries included, as input for the conflict scan.
func GetOtherTimetables(db *sql.DB, excludeID string) ([]models.Timetable, error) {
	list, err := ListTimetables(db, 0, "")
	if err != nil {
		return nil, err
	}

	others := make([]models.Timetable, 0, len(list))
	for _, t := range list {
		if t.ID == excludeID {
			continue
		}
		entries, err := GetTimetableEntries(db, t.ID)
		if err != nil {
			return nil, err
		}
		t.Entries = entries
		others = append(others, *t)
	}
	return others, nil
}
