package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// AttendanceRepository handles database operations for attendance facts
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Upsert inserts an attendance row or overwrites the status of an existing
// row with the same (date, usn, sid) key. Rows absent from a later batch
// are never touched; there is no implicit deletion.
func (r *AttendanceRepository) Upsert(ctx context.Context, att *models.Attendance) error {
	query := `
		INSERT INTO attendance (date, usn, sid, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date, usn, sid) DO UPDATE SET
			status = EXCLUDED.status
	`

	_, err := r.db.Exec(ctx, query, att.Date, att.USN, att.SID, att.Status)
	if err != nil {
		return fmt.Errorf("error upserting attendance: %w", err)
	}
	return nil
}

// ListBySubjectAndDate retrieves the recorded per-student statuses for one
// subject on one class date
func (r *AttendanceRepository) ListBySubjectAndDate(ctx context.Context, sid string, date time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT date, usn, sid, status
		FROM attendance
		WHERE sid = $1 AND date = $2
		ORDER BY usn
	`

	return r.list(ctx, query, sid, date)
}

// ListForStudentYear retrieves all attendance rows of one student and
// subject whose date falls in the given calendar year. Month narrowing
// happens in the service layer.
func (r *AttendanceRepository) ListForStudentYear(ctx context.Context, usn, sid string, year int) ([]*models.Attendance, error) {
	query := `
		SELECT date, usn, sid, status
		FROM attendance
		WHERE usn = $1 AND sid = $2
		  AND date >= make_date($3, 1, 1)
		  AND date < make_date($3 + 1, 1, 1)
		ORDER BY date
	`

	return r.list(ctx, query, usn, sid, year)
}

// ListForStudent retrieves all attendance rows of one student and subject
// across all time
func (r *AttendanceRepository) ListForStudent(ctx context.Context, usn, sid string) ([]*models.Attendance, error) {
	query := `
		SELECT date, usn, sid, status
		FROM attendance
		WHERE usn = $1 AND sid = $2
		ORDER BY date
	`

	return r.list(ctx, query, usn, sid)
}

func (r *AttendanceRepository) list(ctx context.Context, query string, args ...any) ([]*models.Attendance, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var att models.Attendance
		if err := rows.Scan(&att.Date, &att.USN, &att.SID, &att.Status); err != nil {
			return nil, err
		}
		records = append(records, &att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
