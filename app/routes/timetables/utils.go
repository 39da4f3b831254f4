package timetables

import (
	"fmt"
	"strings"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// ValidateTimeFormat validates time format (HH:MM)
func ValidateTimeFormat(timeStr string) bool {
	parts := strings.Split(timeStr, ":")
	return len(parts) == 2 && len(parts[0]) == 2 && len(parts[1]) == 2
}

// ValidateSlotLabel validates a slot label ("HH:MM - HH:MM").
func ValidateSlotLabel(label string) bool {
	parts := strings.Split(label, " - ")
	return len(parts) == 2 && ValidateTimeFormat(parts[0]) && ValidateTimeFormat(parts[1])
}

// ValidateFreePeriodType validates a free-period designation.
func ValidateFreePeriodType(freeType string) bool {
	for _, valid := range models.ValidFreePeriodTypes {
		if models.FreePeriodType(freeType) == valid {
			return true
		}
	}
	return false
}

// ValidateEntries checks a submitted grid against the year's slot
// configuration and the cell invariants: every entry lands on a
// visible (day, slot), no two entries claim one cell, and each entry
// carries exactly the fields its kind requires.
func ValidateEntries(cfg *models.SlotConfig, entries []models.TimetableEntry) error {
	type cell struct {
		day  models.DayOfWeek
		slot string
	}
	used := make(map[cell]bool)

	for i := range entries {
		entry := &entries[i]

		if !cfg.HasDay(entry.Day) {
			return fmt.Errorf("entry %d: day %q is not shown for this year", i, entry.Day)
		}
		if !ValidateSlotLabel(entry.TimeSlot) || !cfg.HasSlot(entry.TimeSlot) {
			return fmt.Errorf("entry %d: time slot %q is not in this year's grid", i, entry.TimeSlot)
		}

		key := cell{entry.Day, entry.TimeSlot}
		if used[key] {
			return fmt.Errorf("entry %d: duplicate entry for %s %s", i, entry.Day, entry.TimeSlot)
		}
		used[key] = true

		switch entry.Kind {
		case models.CellSubject:
			if entry.SubjectName == "" {
				return fmt.Errorf("entry %d: subject entries need a subject name", i)
			}
			if entry.TeacherID == nil || *entry.TeacherID == "" {
				return fmt.Errorf("entry %d: subject entries need a teacher", i)
			}
		case models.CellFree:
			if entry.FreeType == nil || !ValidateFreePeriodType(*entry.FreeType) {
				return fmt.Errorf("entry %d: invalid free period type", i)
			}
		case models.CellLab:
			if entry.LabGroupID == nil || *entry.LabGroupID == "" {
				return fmt.Errorf("entry %d: lab entries need a lab group id", i)
			}
			if len(entry.Batches) == 0 {
				return fmt.Errorf("entry %d: lab entries need at least one batch", i)
			}
			for j, b := range entry.Batches {
				if b.Name == "" || b.SubjectName == "" || b.TeacherID == "" {
					return fmt.Errorf("entry %d: batch %d needs a name, subject, and teacher", i, j)
				}
			}
		default:
			return fmt.Errorf("entry %d: unknown entry kind %q", i, entry.Kind)
		}
	}

	return nil
}

// CellText renders an entry as one line of display text, used by the
// XLSX export.
func CellText(entry *models.TimetableEntry) string {
	if entry == nil {
		return ""
	}
	switch entry.Kind {
	case models.CellSubject:
		if entry.TeacherName != "" {
			return fmt.Sprintf("%s (%s)", entry.SubjectName, entry.TeacherName)
		}
		return entry.SubjectName
	case models.CellFree:
		if entry.FreeType != nil {
			return strings.ReplaceAll(*entry.FreeType, "_", " ")
		}
		return "free"
	case models.CellLab:
		parts := make([]string, 0, len(entry.Batches))
		for _, b := range entry.Batches {
			parts = append(parts, fmt.Sprintf("%s: %s (%s)", b.Name, b.SubjectName, b.TeacherName))
		}
		return "Lab | " + strings.Join(parts, " / ")
	}
	return ""
}
