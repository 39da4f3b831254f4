package slotconfigs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

func TestValidateConfig(t *testing.T) {
	goodSlots := []models.TimeSlot{
		{StartTime: "09:30", EndTime: "10:20"},
		{StartTime: "10:20", EndTime: "11:10"},
	}

	t.Run("valid config", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{models.Monday, models.Friday}, goodSlots)
		assert.NoError(t, err)
	})

	t.Run("unknown day", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{"funday"}, goodSlots)
		assert.Error(t, err)
	})

	t.Run("repeated day", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{models.Monday, models.Monday}, goodSlots)
		assert.Error(t, err)
	})

	t.Run("malformed time", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{models.Monday}, []models.TimeSlot{
			{StartTime: "9:30", EndTime: "10:20"},
		})
		assert.Error(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{models.Monday}, []models.TimeSlot{
			{StartTime: "11:00", EndTime: "10:20"},
		})
		assert.Error(t, err)
	})

	t.Run("overlapping slots", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{models.Monday}, []models.TimeSlot{
			{StartTime: "09:30", EndTime: "10:30"},
			{StartTime: "10:20", EndTime: "11:10"},
		})
		assert.Error(t, err)
	})

	t.Run("gap between slots is allowed", func(t *testing.T) {
		err := ValidateConfig([]models.DayOfWeek{models.Monday}, []models.TimeSlot{
			{StartTime: "09:30", EndTime: "10:20"},
			{StartTime: "11:20", EndTime: "12:10"},
		})
		assert.NoError(t, err)
	})
}
