package models

// Subject defines a course offering for a specific branch and batch cohort.
type Subject struct {
	SID    string `json:"SID" db:"sid" example:"CS857"`
	SName  string `json:"SName" db:"sname" example:"Computer Networks"`
	Branch string `json:"Branch" db:"branch" example:"CSE"`
	Batch  int    `json:"Batch" db:"batch" example:"2024"`
}

// Teaches assigns a teacher to a subject for a section. Composite key,
// no independent identity.
type Teaches struct {
	TID     string `json:"TID" db:"tid"`
	SID     string `json:"SID" db:"sid"`
	Section string `json:"Section" db:"section"`
}

// TeachingAssignment is a Teaches row joined with its subject, as served
// to the teacher panel.
type TeachingAssignment struct {
	SID     string `json:"SID" db:"sid"`
	SName   string `json:"SName" db:"sname"`
	Branch  string `json:"Branch" db:"branch"`
	Batch   int    `json:"Batch" db:"batch"`
	Section string `json:"Section" db:"section"`
}
