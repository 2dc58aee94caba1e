package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
)

type fakeMarksStore struct {
	mu   sync.Mutex
	rows map[string]*models.Mark
}

func newFakeMarksStore() *fakeMarksStore {
	return &fakeMarksStore{rows: make(map[string]*models.Mark)}
}

func markKey(usn, sid string, examType models.ExamType) string {
	return usn + "|" + sid + "|" + string(examType)
}

func (f *fakeMarksStore) Upsert(_ context.Context, mark *models.Mark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[markKey(mark.USN, mark.SID, mark.Type)] = mark
	return nil
}

func (f *fakeMarksStore) GetMaxMarks(_ context.Context, sid string, examType models.ExamType) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.SID == sid && row.Type == examType {
			return row.MaxMarks, nil
		}
	}
	return 0, repositories.ErrMaxMarksNotFound
}

func (f *fakeMarksStore) ListInitial(_ context.Context, sid string, examType models.ExamType) ([]*models.Mark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Mark
	for _, row := range f.rows {
		if row.SID == sid && row.Type == examType {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeMarksStore) ListForStudent(_ context.Context, usn, sid string) ([]*models.Mark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Mark
	for _, row := range f.rows {
		if row.USN == usn && row.SID == sid {
			out = append(out, row)
		}
	}
	return out, nil
}

func TestMarksSubmitBatchIdempotent(t *testing.T) {
	store := newFakeMarksStore()
	svc := NewMarksService(store, &fakeStudentResolver{})

	batch := []dto.MarksRecord{
		{USN: "1JS20IS001", SID: "CS51", Type: "I1", Marks: 38, MaxMarks: 40},
	}

	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// Correction run overwrites, never duplicates.
	batch[0].Marks = 35
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if got := len(store.rows); got != 1 {
		t.Fatalf("expected 1 row after resubmission, got %d", got)
	}
	for _, row := range store.rows {
		if row.Marks != 35 {
			t.Errorf("expected marks overwritten to 35, got %d", row.Marks)
		}
	}
}

func TestMarksSubmitBatchValidation(t *testing.T) {
	svc := NewMarksService(newFakeMarksStore(), &fakeStudentResolver{})

	tests := []struct {
		name    string
		records []dto.MarksRecord
	}{
		{name: "empty batch", records: nil},
		{
			name: "unknown exam type",
			records: []dto.MarksRecord{
				{USN: "1JS20IS001", SID: "CS51", Type: "I4", Marks: 10, MaxMarks: 40},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SubmitBatch(context.Background(), tt.records)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestMaxMarksRoundTrip(t *testing.T) {
	store := newFakeMarksStore()
	svc := NewMarksService(store, &fakeStudentResolver{})

	batch := []dto.MarksRecord{
		{USN: "1JS20IS001", SID: "CS51", Type: "I1", Marks: 38, MaxMarks: 40},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	maxMarks, err := svc.MaxMarks(context.Background(), "CS51", "I1")
	if err != nil {
		t.Fatalf("max marks: %v", err)
	}
	if maxMarks != 40 {
		t.Errorf("expected max marks 40, got %d", maxMarks)
	}

	if _, err := svc.MaxMarks(context.Background(), "CS51", "E"); !errors.Is(err, apperrors.ErrMaxMarksNotFound) {
		t.Errorf("expected max marks not found for E, got %v", err)
	}
	if _, err := svc.MaxMarks(context.Background(), "CS51", "X"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error for type X, got %v", err)
	}
}

func TestStudentMarksScopedToToken(t *testing.T) {
	store := newFakeMarksStore()
	resolver := &fakeStudentResolver{students: map[string]*models.Student{
		"s1@example.com": {USN: "1JS20IS001", Email: "s1@example.com"},
		"s2@example.com": {USN: "1JS20IS002", Email: "s2@example.com"},
	}}
	svc := NewMarksService(store, resolver)

	batch := []dto.MarksRecord{
		{USN: "1JS20IS001", SID: "CS51", Type: "I1", Marks: 38, MaxMarks: 40},
		{USN: "1JS20IS001", SID: "CS51", Type: "E", Marks: 88, MaxMarks: 100},
		{USN: "1JS20IS002", SID: "CS51", Type: "I1", Marks: 21, MaxMarks: 40},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := svc.StudentMarks(context.Background(), "s1@example.com", "CS51")
	if err != nil {
		t.Fatalf("student marks: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for first student, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Marks == 21 {
			t.Errorf("another student's row leaked into the result")
		}
	}

	if _, err := svc.StudentMarks(context.Background(), "nobody@example.com", "CS51"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected student not found, got %v", err)
	}
}

func TestInitialMarks(t *testing.T) {
	store := newFakeMarksStore()
	svc := NewMarksService(store, &fakeStudentResolver{})

	batch := []dto.MarksRecord{
		{USN: "1JS20IS001", SID: "CS51", Type: "I1", Marks: 38, MaxMarks: 40},
		{USN: "1JS20IS002", SID: "CS51", Type: "I1", Marks: 21, MaxMarks: 40},
		{USN: "1JS20IS001", SID: "CS52", Type: "I1", Marks: 30, MaxMarks: 40},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := svc.InitialMarks(context.Background(), "CS51", "I1")
	if err != nil {
		t.Fatalf("initial marks: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for CS51 I1, got %d", len(rows))
	}
}

func TestMarksEndToEnd(t *testing.T) {
	store := newFakeMarksStore()
	resolver := &fakeStudentResolver{students: map[string]*models.Student{
		"s1@example.com": {USN: "1JS20IS001", Email: "s1@example.com"},
	}}
	svc := NewMarksService(store, resolver)

	batch := []dto.MarksRecord{
		{USN: "1JS20IS001", SID: "CS51", Type: "I1", Marks: 85, MaxMarks: 100},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	maxMarks, err := svc.MaxMarks(context.Background(), "CS51", "I1")
	if err != nil {
		t.Fatalf("max marks: %v", err)
	}
	if maxMarks != 100 {
		t.Errorf("expected max marks 100, got %d", maxMarks)
	}

	rows, err := svc.StudentMarks(context.Background(), "s1@example.com", "CS51")
	if err != nil {
		t.Fatalf("student marks: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Type != "I1" || rows[0].Marks != 85 || rows[0].MaxMarks != 100 {
		t.Errorf("unexpected row %+v", rows[0])
	}
	if got := MarkPercentage(rows[0].Marks, rows[0].MaxMarks); got != "85.00" {
		t.Errorf("expected percentage 85.00, got %s", got)
	}
}

func TestMarkPercentage(t *testing.T) {
	tests := []struct {
		name     string
		marks    int
		maxMarks int
		want     string
	}{
		{name: "whole", marks: 85, maxMarks: 100, want: "85.00"},
		{name: "full", marks: 40, maxMarks: 40, want: "100.00"},
		{name: "repeating", marks: 1, maxMarks: 3, want: "33.33"},
		{name: "zero marks", marks: 0, maxMarks: 40, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkPercentage(tt.marks, tt.maxMarks); got != tt.want {
				t.Errorf("MarkPercentage(%d, %d) = %s, want %s", tt.marks, tt.maxMarks, got, tt.want)
			}
		})
	}
}
