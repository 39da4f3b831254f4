package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// GetSlotConfigByYear returns the saved grid configuration for a year,
// or (nil, nil) when none has been saved.
func GetSlotConfigByYear(db *sql.DB, year int) (*models.SlotConfig, error) {
	query := `SELECT id, year, days, slots, created_at, updated_at
			  FROM slot_configs WHERE year = $1`

	cfg := &models.SlotConfig{}
	var daysJSON, slotsJSON string

	err := db.QueryRow(query, year).Scan(
		&cfg.ID, &cfg.Year, &daysJSON, &slotsJSON, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(daysJSON), &cfg.Days); err != nil {
		return nil, fmt.Errorf("failed to parse days for year %d: %v", year, err)
	}
	if err := json.Unmarshal([]byte(slotsJSON), &cfg.Slots); err != nil {
		return nil, fmt.Errorf("failed to parse slots for year %d: %v", year, err)
	}
	return cfg, nil
}

// SaveSlotConfig creates or updates the configuration for a year.
func SaveSlotConfig(db *sql.DB, cfg *models.SlotConfig) error {
	daysJSON, err := json.Marshal(cfg.Days)
	if err != nil {
		return fmt.Errorf("failed to encode days: %v", err)
	}
	slotsJSON, err := json.Marshal(cfg.Slots)
	if err != nil {
		return fmt.Errorf("failed to encode slots: %v", err)
	}

	// Check if a configuration exists for this year
	var existingID string
	err = db.QueryRow("SELECT id FROM slot_configs WHERE year = $1", cfg.Year).Scan(&existingID)

	if err != nil {
		query := `INSERT INTO slot_configs (year, days, slots, created_at, updated_at)
				  VALUES ($1, $2, $3, NOW(), NOW())
				  RETURNING id, created_at, updated_at`
		return db.QueryRow(query, cfg.Year, string(daysJSON), string(slotsJSON)).Scan(
			&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt,
		)
	}

	query := `UPDATE slot_configs SET days = $2, slots = $3, updated_at = NOW() WHERE id = $1`
	if _, err := db.Exec(query, existingID, string(daysJSON), string(slotsJSON)); err != nil {
		return fmt.Errorf("failed to update slot config: %v", err)
	}
	cfg.ID = existingID
	return nil
}

// ListSlotConfigs returns every saved grid configuration ordered by year.
func ListSlotConfigs(db *sql.DB) ([]*models.SlotConfig, error) {
	rows, err := db.Query(`SELECT id, year, days, slots, created_at, updated_at FROM slot_configs ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.SlotConfig
	for rows.Next() {
		cfg := &models.SlotConfig{}
		var daysJSON, slotsJSON string
		if err := rows.Scan(&cfg.ID, &cfg.Year, &daysJSON, &slotsJSON, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(daysJSON), &cfg.Days); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(slotsJSON), &cfg.Slots); err != nil {
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// EffectiveSlotConfig returns the saved configuration for a year,
// falling back to the built-in default.
func EffectiveSlotConfig(db *sql.DB, year int) (*models.SlotConfig, error) {
	cfg, err := GetSlotConfigByYear(db, year)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return models.DefaultSlotConfig(year), nil
	}
	return cfg, nil
}
