package slotconfigs

import (
	"fmt"
	"strings"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// ValidateDayOfWeek validates day of week
func ValidateDayOfWeek(day string) bool {
	validDays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	day = strings.ToLower(day)
	for _, validDay := range validDays {
		if day == validDay {
			return true
		}
	}
	return false
}

// ValidateConfig checks a submitted grid configuration: known days, no
// repeated days, and well-formed non-overlapping slot times in order.
func ValidateConfig(days []models.DayOfWeek, slots []models.TimeSlot) error {
	seen := make(map[models.DayOfWeek]bool)
	for _, day := range days {
		if !ValidateDayOfWeek(string(day)) {
			return fmt.Errorf("unknown day %q", day)
		}
		if seen[day] {
			return fmt.Errorf("day %q listed twice", day)
		}
		seen[day] = true
	}

	for i, slot := range slots {
		if len(slot.StartTime) != 5 || len(slot.EndTime) != 5 ||
			slot.StartTime[2] != ':' || slot.EndTime[2] != ':' {
			return fmt.Errorf("slot %d: times must be HH:MM", i)
		}
		if slot.StartTime >= slot.EndTime {
			return fmt.Errorf("slot %d: start must be before end", i)
		}
		if i > 0 && slots[i-1].EndTime > slot.StartTime {
			return fmt.Errorf("slot %d: overlaps previous slot", i)
		}
	}
	return nil
}
