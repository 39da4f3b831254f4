package services

import (
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// RenderCell is one cell of the read-only viewer. A lab block spanning
// several consecutive slots renders as its first cell with Span > 1;
// the covered cells follow with Continued set so templates can skip
// them.
type RenderCell struct {
	Entry     *models.TimetableEntry `json:"entry,omitempty"`
	Span      int                    `json:"span"`
	Continued bool                   `json:"continued,omitempty"`
}

// RenderRow is one day of the viewer grid.
type RenderRow struct {
	Day   models.DayOfWeek `json:"day"`
	Cells []RenderCell     `json:"cells"`
}

// MergeLabBlocks walks one day's slots in order and collapses
// consecutive cells that share a lab group into a single spanning
// cell. A non-member cell between two members splits the group into
// separate blocks; a lone lab cell keeps Span 1.
func MergeLabBlocks(slots []models.TimeSlot, cells map[string]*models.TimetableEntry) []RenderCell {
	out := make([]RenderCell, 0, len(slots))
	headIdx := -1

	for _, slot := range slots {
		entry := cells[slot.Label()]

		if headIdx >= 0 && out[headIdx].Entry.SameLabGroup(entry) {
			out[headIdx].Span++
			out = append(out, RenderCell{Entry: entry, Span: 0, Continued: true})
			continue
		}

		out = append(out, RenderCell{Entry: entry, Span: 1})
		headIdx = -1
		if entry != nil && entry.Kind == models.CellLab {
			headIdx = len(out) - 1
		}
	}
	return out
}

// BuildRenderRows produces the full viewer grid, one merged row per
// visible day.
func BuildRenderRows(grid *Grid) []RenderRow {
	rows := make([]RenderRow, 0, len(grid.Days))
	for _, day := range grid.Days {
		rows = append(rows, RenderRow{
			Day:   day,
			Cells: MergeLabBlocks(grid.Slots, grid.Cells[day]),
		})
	}
	return rows
}
