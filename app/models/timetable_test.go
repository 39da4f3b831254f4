package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherAssignments(t *testing.T) {
	teacherID := "t1"

	t.Run("subject entry yields one assignment", func(t *testing.T) {
		entry := TimetableEntry{
			Kind:        CellSubject,
			SubjectName: "Maths",
			TeacherID:   &teacherID,
			TeacherName: "A Teacher",
		}
		assignments := entry.TeacherAssignments()
		require.Len(t, assignments, 1)
		assert.Equal(t, "t1", assignments[0].TeacherID)
	})

	t.Run("subject entry without teacher yields none", func(t *testing.T) {
		entry := TimetableEntry{Kind: CellSubject, SubjectName: "Maths"}
		assert.Empty(t, entry.TeacherAssignments())
	})

	t.Run("free entry yields none", func(t *testing.T) {
		freeType := "library"
		entry := TimetableEntry{Kind: CellFree, FreeType: &freeType}
		assert.Empty(t, entry.TeacherAssignments())
	})

	t.Run("lab entry yields one per batch with a teacher", func(t *testing.T) {
		groupID := "lab-1"
		entry := TimetableEntry{
			Kind:       CellLab,
			LabGroupID: &groupID,
			Batches: []LabBatch{
				{Name: "B1", SubjectName: "DBMS Lab", TeacherID: "t1"},
				{Name: "B2", SubjectName: "OS Lab", TeacherID: "t2"},
				{Name: "B3", SubjectName: "Self Study"},
			},
		}
		assert.Len(t, entry.TeacherAssignments(), 2)
	})
}

func TestSameLabGroup(t *testing.T) {
	g1, g2 := "lab-1", "lab-2"
	a := TimetableEntry{Kind: CellLab, LabGroupID: &g1}
	b := TimetableEntry{Kind: CellLab, LabGroupID: &g1}
	c := TimetableEntry{Kind: CellLab, LabGroupID: &g2}
	d := TimetableEntry{Kind: CellSubject}

	assert.True(t, a.SameLabGroup(&b))
	assert.False(t, a.SameLabGroup(&c))
	assert.False(t, a.SameLabGroup(&d))
	assert.False(t, a.SameLabGroup(nil))
}

func TestDefaultSlotConfig(t *testing.T) {
	second := DefaultSlotConfig(2)
	assert.Len(t, second.Days, 6)
	assert.Len(t, second.Slots, 7)

	final := DefaultSlotConfig(4)
	assert.Len(t, final.Days, 5)
	assert.False(t, final.HasDay(Saturday))

	// Extended programmes get a usable grid too.
	for year := 5; year <= MaxYear; year++ {
		cfg := DefaultSlotConfig(year)
		assert.Equal(t, year, cfg.Year)
		assert.Len(t, cfg.Days, 5)
		assert.Len(t, cfg.Slots, 7)
	}
}

func TestSlotLabel(t *testing.T) {
	slot := TimeSlot{StartTime: "09:30", EndTime: "10:20"}
	assert.Equal(t, "09:30 - 10:20", slot.Label())

	cfg := DefaultSlotConfig(1)
	assert.True(t, cfg.HasSlot("09:30 - 10:20"))
	assert.False(t, cfg.HasSlot("08:00 - 09:00"))
	assert.Equal(t, len(cfg.Slots), len(cfg.SlotLabels()))
}
