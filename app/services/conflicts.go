package services

import (
	"github.com/chandramoulisangabathula01/timetale-magic-43/app/models"
)

// Conflict reports a teacher assigned to the same day and time slot in
// two places. For cross-timetable conflicts TimetableID/TimetableName
// identify the other timetable; Self marks a double booking inside the
// timetable being checked.
type Conflict struct {
	TeacherID     string           `json:"teacher_id"`
	TeacherName   string           `json:"teacher_name"`
	Day           models.DayOfWeek `json:"day"`
	TimeSlot      string           `json:"time_slot"`
	SubjectName   string           `json:"subject_name,omitempty"`
	TimetableID   string           `json:"timetable_id,omitempty"`
	TimetableName string           `json:"timetable_name,omitempty"`
	Self          bool             `json:"self,omitempty"`
}

type teacherSlot struct {
	teacherID string
	day       models.DayOfWeek
	timeSlot  string
}

// FindTeacherConflicts scans the candidate entries against every other
// stored timetable and reports each teacher booked at the same
// (day, time slot) elsewhere. Free periods never conflict; lab batch
// teachers participate like subject teachers. Entries inside the
// candidate set that double-book a teacher are reported as self
// conflicts.
func FindTeacherConflicts(entries []models.TimetableEntry, others []models.Timetable) []Conflict {
	conflicts := make([]Conflict, 0)

	// Self conflicts: one teacher claimed twice at the same cell slot
	// (possible through lab batches sharing a teacher).
	seen := make(map[teacherSlot]bool)
	for i := range entries {
		entry := &entries[i]
		for _, a := range entry.TeacherAssignments() {
			key := teacherSlot{a.TeacherID, entry.Day, entry.TimeSlot}
			if seen[key] {
				conflicts = append(conflicts, Conflict{
					TeacherID:   a.TeacherID,
					TeacherName: a.TeacherName,
					Day:         entry.Day,
					TimeSlot:    entry.TimeSlot,
					SubjectName: a.SubjectName,
					Self:        true,
				})
				continue
			}
			seen[key] = true
		}
	}

	// Cross-timetable conflicts: linear scan over all other timetables'
	// entries.
	for oi := range others {
		other := &others[oi]
		for ei := range other.Entries {
			otherEntry := &other.Entries[ei]
			for _, a := range otherEntry.TeacherAssignments() {
				key := teacherSlot{a.TeacherID, otherEntry.Day, otherEntry.TimeSlot}
				if !seen[key] {
					continue
				}
				conflicts = append(conflicts, Conflict{
					TeacherID:     a.TeacherID,
					TeacherName:   a.TeacherName,
					Day:           otherEntry.Day,
					TimeSlot:      otherEntry.TimeSlot,
					SubjectName:   a.SubjectName,
					TimetableID:   other.ID,
					TimetableName: other.Name,
				})
			}
		}
	}

	return conflicts
}
