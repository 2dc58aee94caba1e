package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (usn, email, name, branch, section, batch)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		student.USN, student.Email, student.Name,
		student.Branch, student.Section, student.Batch)
	if err != nil {
		return err
	}
	return nil
}

// GetByUSN retrieves a student by USN
func (r *StudentRepository) GetByUSN(ctx context.Context, usn string) (*models.Student, error) {
	query := `
		SELECT usn, email, name, branch, section, batch
		FROM students
		WHERE usn = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, usn).Scan(
		&student.USN,
		&student.Email,
		&student.Name,
		&student.Branch,
		&student.Section,
		&student.Batch,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByEmail resolves a student profile from an authenticated email.
// Student-scoped reads derive the USN through this lookup, never from
// client input.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT usn, email, name, branch, section, batch
		FROM students
		WHERE email = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&student.USN,
		&student.Email,
		&student.Name,
		&student.Branch,
		&student.Section,
		&student.Batch,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT usn, email, name, branch, section, batch
		FROM students
		ORDER BY usn
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.USN,
			&student.Email,
			&student.Name,
			&student.Branch,
			&student.Section,
			&student.Batch,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update updates a student's profile fields. The USN is never reassigned.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET email = $1, name = $2, branch = $3, section = $4, batch = $5
		WHERE usn = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Email, student.Name, student.Branch,
		student.Section, student.Batch, student.USN)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete deletes a student by USN
func (r *StudentRepository) Delete(ctx context.Context, usn string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE usn = $1`, usn)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}
