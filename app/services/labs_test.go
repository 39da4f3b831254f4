package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

func fourSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{StartTime: "09:30", EndTime: "10:20"},
		{StartTime: "10:20", EndTime: "11:10"},
		{StartTime: "11:20", EndTime: "12:10"},
		{StartTime: "12:10", EndTime: "13:00"},
	}
}

func cellMap(entries ...models.TimetableEntry) map[string]*models.TimetableEntry {
	cells := make(map[string]*models.TimetableEntry)
	for i := range entries {
		cells[entries[i].TimeSlot] = &entries[i]
	}
	return cells
}

func TestMergeLabBlocks(t *testing.T) {
	batch := models.LabBatch{Name: "B1", SubjectName: "DBMS Lab", TeacherID: "t1", TeacherName: "T t1"}

	t.Run("consecutive lab cells merge into one span", func(t *testing.T) {
		cells := cellMap(
			labEntry(models.Monday, "09:30 - 10:20", "lab-1", batch),
			labEntry(models.Monday, "10:20 - 11:10", "lab-1", batch),
			labEntry(models.Monday, "11:20 - 12:10", "lab-1", batch),
		)

		out := MergeLabBlocks(fourSlots(), cells)

		require.Len(t, out, 4)
		assert.Equal(t, 3, out[0].Span)
		assert.True(t, out[1].Continued)
		assert.True(t, out[2].Continued)
		assert.Equal(t, 1, out[3].Span)
		assert.Nil(t, out[3].Entry)
	})

	t.Run("gap splits a lab group into separate blocks", func(t *testing.T) {
		cells := cellMap(
			labEntry(models.Monday, "09:30 - 10:20", "lab-1", batch),
			subjectEntry(models.Monday, "10:20 - 11:10", "Maths", "t9"),
			labEntry(models.Monday, "11:20 - 12:10", "lab-1", batch),
		)

		out := MergeLabBlocks(fourSlots(), cells)

		require.Len(t, out, 4)
		assert.Equal(t, 1, out[0].Span)
		assert.False(t, out[1].Continued)
		assert.Equal(t, 1, out[2].Span)
		assert.False(t, out[2].Continued)
	})

	t.Run("different lab groups do not merge", func(t *testing.T) {
		cells := cellMap(
			labEntry(models.Monday, "09:30 - 10:20", "lab-1", batch),
			labEntry(models.Monday, "10:20 - 11:10", "lab-2", batch),
		)

		out := MergeLabBlocks(fourSlots(), cells)

		require.Len(t, out, 4)
		assert.Equal(t, 1, out[0].Span)
		assert.Equal(t, 1, out[1].Span)
		assert.False(t, out[1].Continued)
	})

	t.Run("single lab cell keeps span one", func(t *testing.T) {
		cells := cellMap(labEntry(models.Monday, "09:30 - 10:20", "lab-1", batch))

		out := MergeLabBlocks(fourSlots(), cells)

		assert.Equal(t, 1, out[0].Span)
		assert.False(t, out[0].Continued)
	})

	t.Run("subject cells never merge", func(t *testing.T) {
		cells := cellMap(
			subjectEntry(models.Monday, "09:30 - 10:20", "Maths", "t1"),
			subjectEntry(models.Monday, "10:20 - 11:10", "Maths", "t1"),
		)

		out := MergeLabBlocks(fourSlots(), cells)

		assert.Equal(t, 1, out[0].Span)
		assert.Equal(t, 1, out[1].Span)
	})
}

func TestBuildRenderRows(t *testing.T) {
	cfg := testConfig()
	grid := BuildGrid(cfg)
	batch := models.LabBatch{Name: "B1", SubjectName: "DBMS Lab", TeacherID: "t1", TeacherName: "T t1"}
	ReconcileGrid(grid, []models.TimetableEntry{
		labEntry(models.Monday, "09:30 - 10:20", "lab-1", batch),
		labEntry(models.Monday, "10:20 - 11:10", "lab-1", batch),
		subjectEntry(models.Tuesday, "09:30 - 10:20", "Maths", "t2"),
	})

	rows := BuildRenderRows(grid)

	require.Len(t, rows, 3)
	assert.Equal(t, models.Monday, rows[0].Day)
	assert.Equal(t, 2, rows[0].Cells[0].Span)
	assert.True(t, rows[0].Cells[1].Continued)
	assert.Equal(t, "Maths", rows[1].Cells[0].Entry.SubjectName)
	// Wednesday row is all empty cells
	for _, cell := range rows[2].Cells {
		assert.Nil(t, cell.Entry)
	}
}
