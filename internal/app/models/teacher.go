package models

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	TID   string `json:"TID" db:"tid" example:"017CS"`
	Email string `json:"Email" db:"email" example:"teacher@example.com"`
	Name  string `json:"Name" db:"name" example:"Jane Smith"`
}
