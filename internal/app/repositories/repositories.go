package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AuthRepository       *AuthRepository
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	SubjectRepository    *SubjectRepository
	MarksRepository      *MarksRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AuthRepository:       NewAuthRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		MarksRepository:      NewMarksRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
