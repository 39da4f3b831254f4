package services

import (
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// Grid is the visible day/time-slot matrix derived from a year's slot
// configuration. Cells maps day -> slot label -> entry; an absent key
// is an empty cell.
type Grid struct {
	Days  []models.DayOfWeek
	Slots []models.TimeSlot
	Cells map[models.DayOfWeek]map[string]*models.TimetableEntry
}

// BuildGrid derives an empty grid from the year-level configuration.
func BuildGrid(cfg *models.SlotConfig) *Grid {
	grid := &Grid{
		Days:  make([]models.DayOfWeek, len(cfg.Days)),
		Slots: make([]models.TimeSlot, len(cfg.Slots)),
		Cells: make(map[models.DayOfWeek]map[string]*models.TimetableEntry),
	}
	copy(grid.Days, cfg.Days)
	copy(grid.Slots, cfg.Slots)

	for _, day := range grid.Days {
		grid.Cells[day] = make(map[string]*models.TimetableEntry)
	}
	return grid
}

// Entry returns the cell content for a day and slot label, or nil.
func (g *Grid) Entry(day models.DayOfWeek, slotLabel string) *models.TimetableEntry {
	row, ok := g.Cells[day]
	if !ok {
		return nil
	}
	return row[slotLabel]
}

// ReconcileGrid places previously saved entries into the grid. Entries
// referencing a day or slot the current configuration no longer shows
// are not placed; they are returned so callers can warn the user. When
// two saved entries claim the same cell, the most recently updated one
// wins and the loser is returned as dropped.
func ReconcileGrid(grid *Grid, entries []models.TimetableEntry) (dropped []models.TimetableEntry) {
	for i := range entries {
		entry := &entries[i]

		row, ok := grid.Cells[entry.Day]
		if !ok {
			dropped = append(dropped, *entry)
			continue
		}
		if !slotVisible(grid.Slots, entry.TimeSlot) {
			dropped = append(dropped, *entry)
			continue
		}

		existing := row[entry.TimeSlot]
		if existing == nil {
			row[entry.TimeSlot] = entry
			continue
		}
		if entry.UpdatedAt.After(existing.UpdatedAt) {
			dropped = append(dropped, *existing)
			row[entry.TimeSlot] = entry
		} else {
			dropped = append(dropped, *entry)
		}
	}
	return dropped
}

func slotVisible(slots []models.TimeSlot, label string) bool {
	for _, s := range slots {
		if s.Label() == label {
			return true
		}
	}
	return false
}

// FlattenGrid returns the placed entries in day-major, slot order.
// This is the canonical ordering used by the viewer and the exporter.
func FlattenGrid(grid *Grid) []models.TimetableEntry {
	var out []models.TimetableEntry
	for _, day := range grid.Days {
		for _, slot := range grid.Slots {
			if entry := grid.Cells[day][slot.Label()]; entry != nil {
				out = append(out, *entry)
			}
		}
	}
	return out
}
