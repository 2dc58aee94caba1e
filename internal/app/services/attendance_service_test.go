package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
)

type fakeAttendanceStore struct {
	mu   sync.Mutex
	rows map[string]*models.Attendance
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{rows: make(map[string]*models.Attendance)}
}

func attKey(date time.Time, usn, sid string) string {
	return date.Format("2006-01-02") + "|" + usn + "|" + sid
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, att *models.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[attKey(att.Date, att.USN, att.SID)] = att
	return nil
}

func (f *fakeAttendanceStore) ListBySubjectAndDate(_ context.Context, sid string, date time.Time) ([]*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Attendance
	for _, row := range f.rows {
		if row.SID == sid && row.Date.Equal(date) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListForStudentYear(_ context.Context, usn, sid string, year int) ([]*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Attendance
	for _, row := range f.rows {
		if row.USN == usn && row.SID == sid && row.Date.Year() == year {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListForStudent(_ context.Context, usn, sid string) ([]*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Attendance
	for _, row := range f.rows {
		if row.USN == usn && row.SID == sid {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeStudentResolver struct {
	students map[string]*models.Student
}

func (f *fakeStudentResolver) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	student, ok := f.students[email]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	return student, nil
}

func boolPtr(b bool) *bool { return &b }

func TestSubmitBatchIdempotent(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, &fakeStudentResolver{})

	batch := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
	}

	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if got := len(store.rows); got != 1 {
		t.Fatalf("expected 1 row after resubmission, got %d", got)
	}
}

func TestSubmitBatchOverwritesStatus(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, &fakeStudentResolver{})

	present := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
	}
	absent := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(false)},
	}

	if err := svc.SubmitBatch(context.Background(), present); err != nil {
		t.Fatalf("submit present: %v", err)
	}
	if err := svc.SubmitBatch(context.Background(), absent); err != nil {
		t.Fatalf("submit absent: %v", err)
	}

	if got := len(store.rows); got != 1 {
		t.Fatalf("expected 1 row, got %d", got)
	}
	for _, row := range store.rows {
		if row.Status {
			t.Fatalf("expected status overwritten to false")
		}
	}
}

func TestSubmitBatchDoesNotDeleteOmittedRows(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, &fakeStudentResolver{})

	full := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
		{Date: "2024-03-04", USN: "1JS20IS002", SID: "CS51", Status: boolPtr(true)},
	}
	partial := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(false)},
	}

	if err := svc.SubmitBatch(context.Background(), full); err != nil {
		t.Fatalf("submit full: %v", err)
	}
	if err := svc.SubmitBatch(context.Background(), partial); err != nil {
		t.Fatalf("submit partial: %v", err)
	}

	if got := len(store.rows); got != 2 {
		t.Fatalf("expected 2 rows after partial resubmission, got %d", got)
	}
}

func TestSubmitBatchValidation(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceStore(), &fakeStudentResolver{})

	tests := []struct {
		name    string
		records []dto.AttendanceRecord
	}{
		{name: "empty batch", records: nil},
		{
			name: "bad date",
			records: []dto.AttendanceRecord{
				{Date: "04-03-2024", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
			},
		},
		{
			name: "missing status",
			records: []dto.AttendanceRecord{
				{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51"},
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

func TestSheetForDate(t *testing.T) {
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, &fakeStudentResolver{})

	batch := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
		{Date: "2024-03-04", USN: "1JS20IS002", SID: "CS51", Status: boolPtr(false)},
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS52", Status: boolPtr(true)},
		{Date: "2024-03-05", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	tests := []struct {
		name     string
		sid      string
		date     string
		wantRows int
		wantErr  error
	}{
		{name: "recorded day", sid: "CS51", date: "2024-03-04", wantRows: 2},
		{name: "other subject", sid: "CS52", date: "2024-03-04", wantRows: 1},
		{name: "no class held", sid: "CS51", date: "2024-03-06", wantRows: 0},
		{name: "bad date", sid: "CS51", date: "04-03-2024", wantErr: apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.SheetForDate(context.Background(), tt.sid, tt.date)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("sheet for date: %v", err)
			}
			if len(rows) != tt.wantRows {
				t.Errorf("expected %d rows, got %d", tt.wantRows, len(rows))
			}
		})
	}
}

func TestMonthlyCalendarFiltersByMonth(t *testing.T) {
	store := newFakeAttendanceStore()
	resolver := &fakeStudentResolver{students: map[string]*models.Student{
		"s1@example.com": {USN: "1JS20IS001", Email: "s1@example.com", Branch: "ISE", Batch: 2024},
	}}
	svc := NewAttendanceService(store, resolver)

	batch := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
		{Date: "2024-03-05", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(false)},
		{Date: "2024-04-01", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
		{Date: "2023-04-01", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rows, err := svc.MonthlyCalendar(context.Background(), "s1@example.com", "CS51", 2024, 4)
	if err != nil {
		t.Fatalf("monthly calendar: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row for April 2024, got %d", len(rows))
	}
	if rows[0].Date != "2024-04-01" {
		t.Errorf("expected date 2024-04-01, got %s", rows[0].Date)
	}
}

func TestMonthlyCalendarRejectsBadMonth(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceStore(), &fakeStudentResolver{})

	for _, month := range []int{0, 13, -1} {
		if _, err := svc.MonthlyCalendar(context.Background(), "s1@example.com", "CS51", 2024, month); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("month %d: expected validation error, got %v", month, err)
		}
	}
}

func TestMonthlyCalendarUnknownStudent(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceStore(), &fakeStudentResolver{})

	_, err := svc.MonthlyCalendar(context.Background(), "nobody@example.com", "CS51", 2024, 3)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected student not found, got %v", err)
	}
}

func TestOverallSummary(t *testing.T) {
	store := newFakeAttendanceStore()
	resolver := &fakeStudentResolver{students: map[string]*models.Student{
		"s1@example.com": {USN: "1JS20IS001", Email: "s1@example.com"},
	}}
	svc := NewAttendanceService(store, resolver)

	batch := []dto.AttendanceRecord{
		{Date: "2024-03-04", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
		{Date: "2024-03-05", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
		{Date: "2024-03-06", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(false)},
		{Date: "2024-03-07", USN: "1JS20IS001", SID: "CS51", Status: boolPtr(true)},
	}
	if err := svc.SubmitBatch(context.Background(), batch); err != nil {
		t.Fatalf("submit: %v", err)
	}

	summary, err := svc.OverallSummary(context.Background(), "s1@example.com", "CS51")
	if err != nil {
		t.Fatalf("overall summary: %v", err)
	}
	if summary.Attended != 3 || summary.Total != 4 {
		t.Errorf("expected 3/4, got %d/%d", summary.Attended, summary.Total)
	}
	if summary.Percentage != "75.00" {
		t.Errorf("expected percentage 75.00, got %s", summary.Percentage)
	}
}

func TestOverallSummaryNoClasses(t *testing.T) {
	resolver := &fakeStudentResolver{students: map[string]*models.Student{
		"s1@example.com": {USN: "1JS20IS001", Email: "s1@example.com"},
	}}
	svc := NewAttendanceService(newFakeAttendanceStore(), resolver)

	summary, err := svc.OverallSummary(context.Background(), "s1@example.com", "CS51")
	if err != nil {
		t.Fatalf("overall summary: %v", err)
	}
	if summary.Percentage != "0" {
		t.Errorf("expected percentage 0 for no classes, got %s", summary.Percentage)
	}
}

func TestAttendanceRatio(t *testing.T) {
	tests := []struct {
		name     string
		statuses []bool
		want     string
	}{
		{name: "no classes", statuses: nil, want: "0"},
		{name: "all present", statuses: []bool{true, true}, want: "100.00"},
		{name: "all absent", statuses: []bool{false, false, false}, want: "0.00"},
		{name: "three of four", statuses: []bool{true, true, false, true}, want: "75.00"},
		{name: "one of three", statuses: []bool{true, false, false}, want: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceRatio(tt.statuses); got != tt.want {
				t.Errorf("AttendanceRatio(%v) = %s, want %s", tt.statuses, got, tt.want)
			}
		})
	}
}
