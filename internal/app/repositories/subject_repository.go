package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// Subject error types
var (
	ErrSubjectNotFound = errors.New("subject not found")
)

// SubjectRepository handles database operations for subjects and teaching
// assignments
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create inserts a new subject row
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (sid, sname, branch, batch)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, subject.SID, subject.SName, subject.Branch, subject.Batch)
	if err != nil {
		return err
	}
	return nil
}

// GetBySID retrieves a subject by SID
func (r *SubjectRepository) GetBySID(ctx context.Context, sid string) (*models.Subject, error) {
	query := `
		SELECT sid, sname, branch, batch
		FROM subjects
		WHERE sid = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, sid).Scan(
		&subject.SID,
		&subject.SName,
		&subject.Branch,
		&subject.Batch,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// ListByBranchBatch retrieves the subjects visible to a student cohort.
// Visibility is by matching branch and batch, not an enrollment table.
func (r *SubjectRepository) ListByBranchBatch(ctx context.Context, branch string, batch int) ([]*models.Subject, error) {
	query := `
		SELECT sid, sname, branch, batch
		FROM subjects
		WHERE branch = $1 AND batch = $2
		ORDER BY sid
	`

	rows, err := r.db.Query(ctx, query, branch, batch)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.SID, &subject.SName, &subject.Branch, &subject.Batch); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update renames a subject
func (r *SubjectRepository) Update(ctx context.Context, sid, sname string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE subjects SET sname = $1 WHERE sid = $2`, sname, sid)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// Delete deletes a subject by SID
func (r *SubjectRepository) Delete(ctx context.Context, sid string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE sid = $1`, sid)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// AssignTeacher inserts a teaching assignment row
func (r *SubjectRepository) AssignTeacher(ctx context.Context, teaches *models.Teaches) error {
	query := `
		INSERT INTO teaches (tid, sid, section)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, teaches.TID, teaches.SID, teaches.Section); err != nil {
		return err
	}
	return nil
}

// ListAssignmentsByTID retrieves a teacher's teaching assignments joined
// with the subject rows
func (r *SubjectRepository) ListAssignmentsByTID(ctx context.Context, tid string) ([]*models.TeachingAssignment, error) {
	query := `
		SELECT s.sid, s.sname, s.branch, s.batch, t.section
		FROM teaches t
		JOIN subjects s ON t.sid = s.sid
		WHERE t.tid = $1
		ORDER BY s.sid, t.section
	`

	rows, err := r.db.Query(ctx, query, tid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.TeachingAssignment
	for rows.Next() {
		var a models.TeachingAssignment
		if err := rows.Scan(&a.SID, &a.SName, &a.Branch, &a.Batch, &a.Section); err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
