package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// Marks error types
var (
	ErrMaxMarksNotFound = errors.New("max marks not found")
)

// MarksRepository handles database operations for exam marks
type MarksRepository struct {
	db *pgxpool.Pool
}

// NewMarksRepository creates a new marks repository
func NewMarksRepository(db *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{
		db: db,
	}
}

// Upsert inserts a mark or overwrites the payload of an existing row with
// the same (usn, sid, type) key. Repeated application of the same record
// leaves the stored state unchanged.
func (r *MarksRepository) Upsert(ctx context.Context, mark *models.Mark) error {
	query := `
		INSERT INTO marks (usn, sid, type, marks, max_marks)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (usn, sid, type) DO UPDATE SET
			marks = EXCLUDED.marks,
			max_marks = EXCLUDED.max_marks
	`

	_, err := r.db.Exec(ctx, query, mark.USN, mark.SID, mark.Type, mark.Marks, mark.MaxMarks)
	if err != nil {
		return fmt.Errorf("error upserting mark: %w", err)
	}
	return nil
}

// GetMaxMarks retrieves the maximum marks recorded for a subject and exam
// type. Any stored row carries it; absence means the exam was never scored.
func (r *MarksRepository) GetMaxMarks(ctx context.Context, sid string, examType models.ExamType) (int, error) {
	query := `
		SELECT max_marks
		FROM marks
		WHERE sid = $1 AND type = $2
		LIMIT 1
	`

	var maxMarks int
	err := r.db.QueryRow(ctx, query, sid, examType).Scan(&maxMarks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrMaxMarksNotFound
		}
		return 0, fmt.Errorf("error retrieving max marks: %w", err)
	}

	return maxMarks, nil
}

// ListInitial retrieves the stored marks per student for a subject and exam
// type, used to pre-fill the teacher's entry sheet
func (r *MarksRepository) ListInitial(ctx context.Context, sid string, examType models.ExamType) ([]*models.Mark, error) {
	query := `
		SELECT usn, sid, type, marks, max_marks
		FROM marks
		WHERE sid = $1 AND type = $2
		ORDER BY usn
	`

	return r.list(ctx, query, sid, examType)
}

// ListForStudent retrieves all marks rows for one student and subject
func (r *MarksRepository) ListForStudent(ctx context.Context, usn, sid string) ([]*models.Mark, error) {
	query := `
		SELECT usn, sid, type, marks, max_marks
		FROM marks
		WHERE usn = $1 AND sid = $2
		ORDER BY type
	`

	return r.list(ctx, query, usn, sid)
}

func (r *MarksRepository) list(ctx context.Context, query string, args ...any) ([]*models.Mark, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.Mark
	for rows.Next() {
		var mark models.Mark
		if err := rows.Scan(&mark.USN, &mark.SID, &mark.Type, &mark.Marks, &mark.MaxMarks); err != nil {
			return nil, err
		}
		marks = append(marks, &mark)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return marks, nil
}
