package timetables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

func strPtr(s string) *string { return &s }

func validConfig() *models.SlotConfig {
	return &models.SlotConfig{
		Year: 1,
		Days: []models.DayOfWeek{models.Monday, models.Tuesday},
		Slots: []models.TimeSlot{
			{StartTime: "09:30", EndTime: "10:20"},
			{StartTime: "10:20", EndTime: "11:10"},
		},
	}
}

func TestValidateSlotLabel(t *testing.T) {
	assert.True(t, ValidateSlotLabel("09:30 - 10:20"))
	assert.False(t, ValidateSlotLabel("9:30 - 10:20"))
	assert.False(t, ValidateSlotLabel("09:30-10:20"))
	assert.False(t, ValidateSlotLabel("09:30"))
	assert.False(t, ValidateSlotLabel(""))
}

func TestValidateEntries(t *testing.T) {
	cfg := validConfig()

	subject := func(day models.DayOfWeek, slot string) models.TimetableEntry {
		return models.TimetableEntry{
			Day:         day,
			TimeSlot:    slot,
			Kind:        models.CellSubject,
			SubjectName: "Maths",
			TeacherID:   strPtr("t1"),
			TeacherName: "A Teacher",
		}
	}

	t.Run("valid subject entry", func(t *testing.T) {
		err := ValidateEntries(cfg, []models.TimetableEntry{subject(models.Monday, "09:30 - 10:20")})
		assert.NoError(t, err)
	})

	t.Run("day outside configuration", func(t *testing.T) {
		err := ValidateEntries(cfg, []models.TimetableEntry{subject(models.Saturday, "09:30 - 10:20")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "day")
	})

	t.Run("slot outside configuration", func(t *testing.T) {
		err := ValidateEntries(cfg, []models.TimetableEntry{subject(models.Monday, "15:40 - 16:30")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "time slot")
	})

	t.Run("two entries for one cell", func(t *testing.T) {
		err := ValidateEntries(cfg, []models.TimetableEntry{
			subject(models.Monday, "09:30 - 10:20"),
			subject(models.Monday, "09:30 - 10:20"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("subject without teacher", func(t *testing.T) {
		entry := subject(models.Monday, "09:30 - 10:20")
		entry.TeacherID = nil
		err := ValidateEntries(cfg, []models.TimetableEntry{entry})
		assert.Error(t, err)
	})

	t.Run("free period with valid type", func(t *testing.T) {
		entry := models.TimetableEntry{
			Day:      models.Monday,
			TimeSlot: "09:30 - 10:20",
			Kind:     models.CellFree,
			FreeType: strPtr("library"),
		}
		assert.NoError(t, ValidateEntries(cfg, []models.TimetableEntry{entry}))
	})

	t.Run("free period with unknown type", func(t *testing.T) {
		entry := models.TimetableEntry{
			Day:      models.Monday,
			TimeSlot: "09:30 - 10:20",
			Kind:     models.CellFree,
			FreeType: strPtr("nap"),
		}
		assert.Error(t, ValidateEntries(cfg, []models.TimetableEntry{entry}))
	})

	t.Run("lab entry requires group and batches", func(t *testing.T) {
		entry := models.TimetableEntry{
			Day:        models.Monday,
			TimeSlot:   "09:30 - 10:20",
			Kind:       models.CellLab,
			LabGroupID: strPtr("lab-1"),
		}
		require.Error(t, ValidateEntries(cfg, []models.TimetableEntry{entry}))

		entry.Batches = []models.LabBatch{
			{Name: "B1", SubjectName: "DBMS Lab", TeacherID: "t1", TeacherName: "A Teacher"},
		}
		assert.NoError(t, ValidateEntries(cfg, []models.TimetableEntry{entry}))
	})

	t.Run("lab batch missing teacher", func(t *testing.T) {
		entry := models.TimetableEntry{
			Day:        models.Monday,
			TimeSlot:   "09:30 - 10:20",
			Kind:       models.CellLab,
			LabGroupID: strPtr("lab-1"),
			Batches: []models.LabBatch{
				{Name: "B1", SubjectName: "DBMS Lab"},
			},
		}
		assert.Error(t, ValidateEntries(cfg, []models.TimetableEntry{entry}))
	})

	t.Run("unknown kind", func(t *testing.T) {
		entry := models.TimetableEntry{
			Day:      models.Monday,
			TimeSlot: "09:30 - 10:20",
			Kind:     "lecture",
		}
		assert.Error(t, ValidateEntries(cfg, []models.TimetableEntry{entry}))
	})
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", CellText(nil))

	subject := models.TimetableEntry{
		Kind:        models.CellSubject,
		SubjectName: "Maths",
		TeacherName: "A Teacher",
	}
	assert.Equal(t, "Maths (A Teacher)", CellText(&subject))

	free := models.TimetableEntry{
		Kind:     models.CellFree,
		FreeType: strPtr("self_study"),
	}
	assert.Equal(t, "self study", CellText(&free))

	lab := models.TimetableEntry{
		Kind:       models.CellLab,
		LabGroupID: strPtr("lab-1"),
		Batches: []models.LabBatch{
			{Name: "B1", SubjectName: "DBMS Lab", TeacherName: "A Teacher"},
			{Name: "B2", SubjectName: "OS Lab", TeacherName: "B Teacher"},
		},
	}
	assert.Equal(t, "Lab | B1: DBMS Lab (A Teacher) / B2: OS Lab (B Teacher)", CellText(&lab))
}
