package models

// Student defines the student model based on the 'students' table.
// USN is the immutable identity; Branch+Batch determine the subjects
// visible to the student.
type Student struct {
	USN     string `json:"USN" db:"usn" example:"1JS20IS001"`
	Email   string `json:"Email" db:"email" example:"student1@example.com"`
	Name    string `json:"Name" db:"name" example:"Student 1"`
	Branch  string `json:"Branch" db:"branch" example:"CSE"`
	Section string `json:"Section" db:"section" example:"A"`
	Batch   int    `json:"Batch" db:"batch" example:"2024"`
}
