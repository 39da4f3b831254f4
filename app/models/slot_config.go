package models

import "time"

// MaxYear is the highest year of study a timetable or slot
// configuration can belong to. Years beyond the usual four cover
// extended programmes such as integrated masters.
const MaxYear = 6

// TimeSlot is one column of the timetable grid.
type TimeSlot struct {
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// Label returns the slot identity used by timetable entries,
// e.g. "09:30 - 10:20".
func (s TimeSlot) Label() string {
	return s.StartTime + " - " + s.EndTime
}

// SlotConfig represents the grid configuration for one year of study:
// which days are shown and which time slots make up a day. Days and
// Slots are stored as JSON columns.
type SlotConfig struct {
	ID        string      `json:"id" db:"id"`
	Year      int         `json:"year" db:"year"`
	Days      []DayOfWeek `json:"days" db:"days"`
	Slots     []TimeSlot  `json:"slots" db:"slots"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// SlotLabels returns the ordered slot labels for the configured grid.
func (c *SlotConfig) SlotLabels() []string {
	labels := make([]string, len(c.Slots))
	for i, s := range c.Slots {
		labels[i] = s.Label()
	}
	return labels
}

// HasDay reports whether the configuration shows the given day.
func (c *SlotConfig) HasDay(day DayOfWeek) bool {
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}

// HasSlot reports whether the configuration contains a slot with the
// given label.
func (c *SlotConfig) HasSlot(label string) bool {
	for _, s := range c.Slots {
		if s.Label() == label {
			return true
		}
	}
	return false
}

// DefaultSlotConfig returns the built-in grid for a year when no
// configuration has been saved. Final-year students have no Saturday
// classes.
func DefaultSlotConfig(year int) *SlotConfig {
	days := []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	if year >= 4 {
		days = days[:5]
	}
	return &SlotConfig{
		Year: year,
		Days: days,
		Slots: []TimeSlot{
			{StartTime: "09:30", EndTime: "10:20"},
			{StartTime: "10:20", EndTime: "11:10"},
			{StartTime: "11:20", EndTime: "12:10"},
			{StartTime: "12:10", EndTime: "13:00"},
			{StartTime: "14:00", EndTime: "14:50"},
			{StartTime: "14:50", EndTime: "15:40"},
			{StartTime: "15:40", EndTime: "16:30"},
		},
	}
}
