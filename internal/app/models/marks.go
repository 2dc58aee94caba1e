package models

// Mark is a marks fact keyed by (USN, SID, Type). At most one row per
// student, subject and exam type; resubmission overwrites in place.
type Mark struct {
	USN      string   `json:"USN" db:"usn"`
	SID      string   `json:"SID" db:"sid"`
	Type     ExamType `json:"Type" db:"type"`
	Marks    int      `json:"Marks" db:"marks"`
	MaxMarks int      `json:"MaxMarks" db:"max_marks"`
}
