package models

// Role defines the credential role recorded in the auth table.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleStudent, RoleAdmin:
		return true
	default:
		return false
	}
}

// ExamType identifies an assessment: three internals and one external.
type ExamType string

const (
	ExamInternal1 ExamType = "I1"
	ExamInternal2 ExamType = "I2"
	ExamInternal3 ExamType = "I3"
	ExamExternal  ExamType = "E"
)

// Valid returns true when the exam type is a supported value.
func (t ExamType) Valid() bool {
	switch t {
	case ExamInternal1, ExamInternal2, ExamInternal3, ExamExternal:
		return true
	default:
		return false
	}
}
