package dto

// AttendanceRecord is one row of a teacher's attendance submission.
// (Date, USN, SID) is the natural key; Status=false means present in
// class records as "class held, absent".
type AttendanceRecord struct {
	Date   string `json:"Date" binding:"required,classdate" example:"2023-07-12"`
	USN    string `json:"USN" binding:"required" example:"1JS20IS001"`
	SID    string `json:"SID" binding:"required" example:"CS857"`
	Status *bool  `json:"Status" binding:"required"`
}

// AttendanceBatchRequest is the body of a bulk attendance submission.
type AttendanceBatchRequest []AttendanceRecord

// AttendanceStatusRow is a per-student status for one subject and date,
// served to the teacher sheet.
type AttendanceStatusRow struct {
	USN    string `json:"USN"`
	Status bool   `json:"Status"`
}

// AttendanceDayRow is one matched day of a student's monthly calendar.
// Days with no row are implicitly "no class"; the client renders those
// as a third state.
type AttendanceDayRow struct {
	Date   string `json:"Date" example:"2023-07-12"`
	Status bool   `json:"Status"`
}

// AttendanceStatusOnly carries just the status flag, used by the overall
// attendance listing.
type AttendanceStatusOnly struct {
	Status bool `json:"Status"`
}

// AttendanceSummary is the server-computed overall ratio for one student
// and subject. Percentage is "0" when no class was ever recorded.
type AttendanceSummary struct {
	Attended   int    `json:"attended"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage" example:"75.00"`
}
