package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// Teacher error types
var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create inserts a new teacher row
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (tid, email, name)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, teacher.TID, teacher.Email, teacher.Name); err != nil {
		return err
	}
	return nil
}

// GetByTID retrieves a teacher by TID
func (r *TeacherRepository) GetByTID(ctx context.Context, tid string) (*models.Teacher, error) {
	query := `
		SELECT tid, email, name
		FROM teachers
		WHERE tid = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, tid).Scan(
		&teacher.TID,
		&teacher.Email,
		&teacher.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetTIDByEmail resolves the teacher identifier for an authenticated email
func (r *TeacherRepository) GetTIDByEmail(ctx context.Context, email string) (string, error) {
	var tid string
	err := r.db.QueryRow(ctx, `SELECT tid FROM teachers WHERE email = $1`, email).Scan(&tid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrTeacherNotFound
		}
		return "", fmt.Errorf("error resolving teacher identifier: %w", err)
	}
	return tid, nil
}

// GetAll retrieves all teachers
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT tid, email, name
		FROM teachers
		ORDER BY tid
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(&teacher.TID, &teacher.Email, &teacher.Name); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Count returns the number of teachers
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}

// Update updates a teacher's profile fields
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET email = $1, name = $2
		WHERE tid = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, teacher.Email, teacher.Name, teacher.TID)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}
	return nil
}

// Delete deletes a teacher by TID
func (r *TeacherRepository) Delete(ctx context.Context, tid string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE tid = $1`, tid)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}
	return nil
}
