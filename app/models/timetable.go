package models

import "time"

// Timetable represents one named weekly schedule for a year/branch.
type Timetable struct {
	ID        string           `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Year      int              `json:"year" db:"year"`
	Branch    string           `json:"branch" db:"branch"`
	IsActive  bool             `json:"is_active" db:"is_active"`
	Entries   []TimetableEntry `json:"entries,omitempty"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// LabBatch is one rotating batch inside a lab block: which batch of
// students sees which subject with which teacher.
type LabBatch struct {
	Name        string `json:"name"`
	SubjectName string `json:"subject_name"`
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
}

// TimetableEntry represents a single grid cell. Exactly one of the
// kind-specific groups is populated:
//   - subject: SubjectName + TeacherID/TeacherName
//   - free:    FreeType
//   - lab:     LabGroupID + Batches
type TimetableEntry struct {
	ID          string     `json:"id" db:"id"`
	TimetableID string     `json:"timetable_id" db:"timetable_id"`
	Day         DayOfWeek  `json:"day" db:"day"`
	TimeSlot    string     `json:"time_slot" db:"time_slot"` // "HH:MM - HH:MM"
	Kind        CellKind   `json:"kind" db:"kind"`
	SubjectName string     `json:"subject_name,omitempty" db:"subject_name"`
	TeacherID   *string    `json:"teacher_id,omitempty" db:"teacher_id"`
	TeacherName string     `json:"teacher_name,omitempty" db:"teacher_name"`
	FreeType    *string    `json:"free_type,omitempty" db:"free_type"`
	LabGroupID  *string    `json:"lab_group_id,omitempty" db:"lab_group_id"`
	Batches     []LabBatch `json:"batches,omitempty"` // JSON column
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// TeacherAssignments returns every (teacher, cell) assignment the entry
// carries. Subject cells yield one, lab cells one per batch, free
// periods none.
func (e *TimetableEntry) TeacherAssignments() []LabBatch {
	switch e.Kind {
	case CellSubject:
		if e.TeacherID == nil || *e.TeacherID == "" {
			return nil
		}
		return []LabBatch{{
			SubjectName: e.SubjectName,
			TeacherID:   *e.TeacherID,
			TeacherName: e.TeacherName,
		}}
	case CellLab:
		var out []LabBatch
		for _, b := range e.Batches {
			if b.TeacherID != "" {
				out = append(out, b)
			}
		}
		return out
	}
	return nil
}

// SameLabGroup reports whether both entries belong to one lab block.
func (e *TimetableEntry) SameLabGroup(other *TimetableEntry) bool {
	if e == nil || other == nil {
		return false
	}
	if e.Kind != CellLab || other.Kind != CellLab {
		return false
	}
	if e.LabGroupID == nil || other.LabGroupID == nil {
		return false
	}
	return *e.LabGroupID == *other.LabGroupID
}
