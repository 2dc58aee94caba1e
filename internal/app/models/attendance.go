package models

import "time"

// Attendance is a fact keyed by (Date, USN, SID). Status false means the
// class was held and the student was absent; the absence of a row for a
// date means no class was held at all.
type Attendance struct {
	Date   time.Time `json:"Date" db:"date"`
	USN    string    `json:"USN" db:"usn"`
	SID    string    `json:"SID" db:"sid"`
	Status bool      `json:"Status" db:"status"`
}
