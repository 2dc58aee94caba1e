package dto

// CreateStudentRequest creates a student profile together with its login
// credential.
type CreateStudentRequest struct {
	USN      string `json:"usn" binding:"required,usn" example:"1JS20IS001"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Branch   string `json:"branch" binding:"required" example:"CSE"`
	Section  string `json:"section" binding:"required" example:"A"`
	Batch    int    `json:"batch" binding:"required" example:"2024"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateStudentRequest updates a student profile. The USN is immutable
// and comes from the path.
type UpdateStudentRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Branch  string `json:"branch" binding:"required"`
	Section string `json:"section" binding:"required"`
	Batch   int    `json:"batch" binding:"required"`
}

// CreateTeacherRequest creates a teacher profile together with its login
// credential.
type CreateTeacherRequest struct {
	TID      string `json:"tid" binding:"required" example:"017CS"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateTeacherRequest updates a teacher profile.
type UpdateTeacherRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// CreateSubjectRequest creates a course offering for a branch+batch cohort.
type CreateSubjectRequest struct {
	SID    string `json:"sid" binding:"required" example:"CS857"`
	SName  string `json:"sname" binding:"required" example:"Computer Networks"`
	Branch string `json:"branch" binding:"required"`
	Batch  int    `json:"batch" binding:"required"`
}

// UpdateSubjectRequest renames a course offering.
type UpdateSubjectRequest struct {
	SName string `json:"sname" binding:"required"`
}

// AssignSubjectRequest assigns a teacher to a subject for a section.
type AssignSubjectRequest struct {
	TID     string `json:"tid" binding:"required"`
	SID     string `json:"sid" binding:"required"`
	Section string `json:"section" binding:"required"`
}

// TIDResponse resolves the authenticated teacher's identifier.
type TIDResponse struct {
	TID string `json:"TID"`
}

// StudentSubjectRow is a subject visible to a student, filtered by the
// student's branch and batch.
type StudentSubjectRow struct {
	SID   string `json:"SID"`
	SName string `json:"SName"`
}
