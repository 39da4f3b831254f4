package models

// DayOfWeek defines the days a timetable grid can show.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// CellKind defines what a timetable entry holds.
type CellKind string

const (
	CellSubject CellKind = "subject"
	CellFree    CellKind = "free"
	CellLab     CellKind = "lab"
)

// FreePeriodType defines the possible designations for a free period.
type FreePeriodType string

const (
	FreeLibrary  FreePeriodType = "library"
	FreeSports   FreePeriodType = "sports"
	FreeProject  FreePeriodType = "project"
	FreeCounsel  FreePeriodType = "counselling"
	FreeSelf     FreePeriodType = "self_study"
	FreeAssembly FreePeriodType = "assembly"
)

// ValidFreePeriodTypes lists every accepted free-period designation.
var ValidFreePeriodTypes = []FreePeriodType{
	FreeLibrary, FreeSports, FreeProject, FreeCounsel, FreeSelf, FreeAssembly,
}
