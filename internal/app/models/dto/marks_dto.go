package dto

// MarksRecord is one row of a teacher's marks submission, keyed by
// (USN, SID, Type). Marks above MaxMarks and MaxMarks of zero are stored
// as submitted.
type MarksRecord struct {
	USN      string `json:"USN" binding:"required" example:"1JS20IS001"`
	SID      string `json:"SID" binding:"required" example:"CS857"`
	Type     string `json:"Type" binding:"required,oneof=I1 I2 I3 E" example:"I1"`
	Marks    int    `json:"Marks" binding:"min=0"`
	MaxMarks int    `json:"MaxMarks" binding:"min=0"`
}

// MarksBatchRequest is the body of a bulk marks submission.
type MarksBatchRequest []MarksRecord

// MaxMarksResponse is the configured maximum for a subject and exam type.
type MaxMarksResponse struct {
	MaxMarks int `json:"MaxMarks"`
}

// InitialMarkRow is a previously stored mark for one student, used to
// pre-fill the teacher's entry sheet.
type InitialMarkRow struct {
	USN   string `json:"USN"`
	Marks int    `json:"Marks"`
}

// StudentMarkRow is one exam result as served to the student panel.
type StudentMarkRow struct {
	Type     string `json:"Type"`
	Marks    int    `json:"Marks"`
	MaxMarks int    `json:"MaxMarks"`
}
