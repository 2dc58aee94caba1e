package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/helpers"
)

// AttendanceStore is the persistence surface the attendance service needs.
type AttendanceStore interface {
	Upsert(ctx context.Context, att *models.Attendance) error
	ListBySubjectAndDate(ctx context.Context, sid string, date time.Time) ([]*models.Attendance, error)
	ListForStudentYear(ctx context.Context, usn, sid string, year int) ([]*models.Attendance, error)
	ListForStudent(ctx context.Context, usn, sid string) ([]*models.Attendance, error)
}

// AttendanceService applies attendance batches and serves the derived
// calendar and ratio views.
type AttendanceService struct {
	store    AttendanceStore
	students StudentResolver
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(store AttendanceStore, students StudentResolver) *AttendanceService {
	return &AttendanceService{
		store:    store,
		students: students,
	}
}

// SubmitBatch applies each record as an idempotent insert-or-overwrite
// keyed by (date, usn, sid). Rows are written concurrently; they target
// disjoint keys, so ordering within the batch is immaterial. A row failure
// surfaces as a batch failure with no rollback of already-applied rows.
func (s *AttendanceService) SubmitBatch(ctx context.Context, records []dto.AttendanceRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: empty attendance batch", apperrors.ErrValidationFailed)
	}

	facts := make([]*models.Attendance, 0, len(records))
	for _, rec := range records {
		date, err := helpers.ParseClassDate(rec.Date)
		if err != nil {
			return fmt.Errorf("%w: invalid date %q", apperrors.ErrValidationFailed, rec.Date)
		}
		if rec.Status == nil {
			return fmt.Errorf("%w: missing status for %s", apperrors.ErrValidationFailed, rec.USN)
		}
		facts = append(facts, &models.Attendance{
			Date:   date,
			USN:    rec.USN,
			SID:    rec.SID,
			Status: *rec.Status,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, fact := range facts {
		fact := fact
		g.Go(func() error {
			return s.store.Upsert(gctx, fact)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("attendance batch failed: %w", err)
	}
	return nil
}

// SheetForDate returns the recorded statuses for one subject and class
// date, for pre-filling the teacher's sheet.
func (s *AttendanceService) SheetForDate(ctx context.Context, sid, dateStr string) ([]dto.AttendanceStatusRow, error) {
	date, err := helpers.ParseClassDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidationFailed, dateStr)
	}

	records, err := s.store.ListBySubjectAndDate(ctx, sid, date)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance sheet: %w", err)
	}

	rows := make([]dto.AttendanceStatusRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, dto.AttendanceStatusRow{USN: rec.USN, Status: rec.Status})
	}
	return rows, nil
}

// MonthlyCalendar returns the matched class days of one month for the
// authenticated student. The year is narrowed in storage, the month in
// application code; days with no row are left for the client to render
// as "no class".
func (s *AttendanceService) MonthlyCalendar(ctx context.Context, email, sid string, year, month int) ([]dto.AttendanceDayRow, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month out of range", apperrors.ErrValidationFailed)
	}

	student, err := s.resolveStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListForStudentYear(ctx, student.USN, sid, year)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance for year: %w", err)
	}

	rows := make([]dto.AttendanceDayRow, 0, len(records))
	for _, rec := range records {
		if int(rec.Date.Month()) != month {
			continue
		}
		rows = append(rows, dto.AttendanceDayRow{
			Date:   helpers.FormatClassDate(rec.Date),
			Status: rec.Status,
		})
	}
	return rows, nil
}

// Overall returns the status of every class held for the authenticated
// student in one subject, across all time.
func (s *AttendanceService) Overall(ctx context.Context, email, sid string) ([]dto.AttendanceStatusOnly, error) {
	student, err := s.resolveStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListForStudent(ctx, student.USN, sid)
	if err != nil {
		return nil, fmt.Errorf("error listing overall attendance: %w", err)
	}

	rows := make([]dto.AttendanceStatusOnly, 0, len(records))
	for _, rec := range records {
		rows = append(rows, dto.AttendanceStatusOnly{Status: rec.Status})
	}
	return rows, nil
}

// OverallSummary returns the attended/total counts and the two-decimal
// percentage for the authenticated student in one subject.
func (s *AttendanceService) OverallSummary(ctx context.Context, email, sid string) (*dto.AttendanceSummary, error) {
	student, err := s.resolveStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListForStudent(ctx, student.USN, sid)
	if err != nil {
		return nil, fmt.Errorf("error listing overall attendance: %w", err)
	}

	statuses := make([]bool, 0, len(records))
	attended := 0
	for _, rec := range records {
		statuses = append(statuses, rec.Status)
		if rec.Status {
			attended++
		}
	}

	return &dto.AttendanceSummary{
		Attended:   attended,
		Total:      len(statuses),
		Percentage: AttendanceRatio(statuses),
	}, nil
}

func (s *AttendanceService) resolveStudent(ctx context.Context, email string) (*models.Student, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error resolving student: %w", err)
	}
	return student, nil
}

// AttendanceRatio computes count(present)/count(all) as a two-decimal
// percentage string. No recorded classes yields "0", not an error.
func AttendanceRatio(statuses []bool) string {
	if len(statuses) == 0 {
		return "0"
	}
	attended := 0
	for _, present := range statuses {
		if present {
			attended++
		}
	}
	ratio := float64(attended) / float64(len(statuses)) * 100
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
