package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
)

// MarksStore is the persistence surface the marks service needs.
type MarksStore interface {
	Upsert(ctx context.Context, mark *models.Mark) error
	GetMaxMarks(ctx context.Context, sid string, examType models.ExamType) (int, error)
	ListInitial(ctx context.Context, sid string, examType models.ExamType) ([]*models.Mark, error)
	ListForStudent(ctx context.Context, usn, sid string) ([]*models.Mark, error)
}

// MarksService applies marks batches and serves the per-exam reads.
type MarksService struct {
	store    MarksStore
	students StudentResolver
}

// NewMarksService creates a new marks service
func NewMarksService(store MarksStore, students StudentResolver) *MarksService {
	return &MarksService{
		store:    store,
		students: students,
	}
}

// SubmitBatch applies each record as an idempotent insert-or-overwrite
// keyed by (usn, sid, type). Marks above MaxMarks and MaxMarks of zero
// are stored as submitted. A row failure surfaces as a batch failure
// with no rollback of already-applied rows.
func (s *MarksService) SubmitBatch(ctx context.Context, records []dto.MarksRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: empty marks batch", apperrors.ErrValidationFailed)
	}

	facts := make([]*models.Mark, 0, len(records))
	for _, rec := range records {
		examType := models.ExamType(rec.Type)
		if !examType.Valid() {
			return fmt.Errorf("%w: invalid exam type %q", apperrors.ErrValidationFailed, rec.Type)
		}
		facts = append(facts, &models.Mark{
			USN:      rec.USN,
			SID:      rec.SID,
			Type:     examType,
			Marks:    rec.Marks,
			MaxMarks: rec.MaxMarks,
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
		return fmt.Errorf("marks batch failed: %w", err)
	}
	return nil
}

// MaxMarks returns the maximum marks recorded for a subject and exam type.
func (s *MarksService) MaxMarks(ctx context.Context, sid, typeStr string) (int, error) {
	examType := models.ExamType(typeStr)
	if !examType.Valid() {
		return 0, fmt.Errorf("%w: invalid exam type %q", apperrors.ErrValidationFailed, typeStr)
	}

	maxMarks, err := s.store.GetMaxMarks(ctx, sid, examType)
	if err != nil {
		if errors.Is(err, repositories.ErrMaxMarksNotFound) {
			return 0, apperrors.ErrMaxMarksNotFound
		}
		return 0, fmt.Errorf("error retrieving max marks: %w", err)
	}
	return maxMarks, nil
}

// InitialMarks returns the stored marks per student for a subject and exam
// type, for pre-filling the teacher's entry sheet.
func (s *MarksService) InitialMarks(ctx context.Context, sid, typeStr string) ([]dto.InitialMarkRow, error) {
	examType := models.ExamType(typeStr)
	if !examType.Valid() {
		return nil, fmt.Errorf("%w: invalid exam type %q", apperrors.ErrValidationFailed, typeStr)
	}

	marks, err := s.store.ListInitial(ctx, sid, examType)
	if err != nil {
		return nil, fmt.Errorf("error listing initial marks: %w", err)
	}

	rows := make([]dto.InitialMarkRow, 0, len(marks))
	for _, mark := range marks {
		rows = append(rows, dto.InitialMarkRow{USN: mark.USN, Marks: mark.Marks})
	}
	return rows, nil
}

// StudentMarks returns the exam results of the authenticated student for
// one subject. The USN is derived from the email in the caller's token,
// so a student can never read another student's rows.
func (s *MarksService) StudentMarks(ctx context.Context, email, sid string) ([]dto.StudentMarkRow, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error resolving student: %w", err)
	}

	marks, err := s.store.ListForStudent(ctx, student.USN, sid)
	if err != nil {
		return nil, fmt.Errorf("error listing student marks: %w", err)
	}

	rows := make([]dto.StudentMarkRow, 0, len(marks))
	for _, mark := range marks {
		rows = append(rows, dto.StudentMarkRow{
			Type:     string(mark.Type),
			Marks:    mark.Marks,
			MaxMarks: mark.MaxMarks,
		})
	}
	return rows, nil
}

// MarkPercentage computes marks/maxMarks as a two-decimal percentage
// string. A zero MaxMarks is stored as-is upstream and divides through
// here unguarded.
func MarkPercentage(marks, maxMarks int) string {
	percentage := float64(marks) / float64(maxMarks) * 100
	return strconv.FormatFloat(percentage, 'f', 2, 64)
}
