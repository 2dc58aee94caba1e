package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/repositories"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/auth"
	"github.com/nidhi20908/Academic-tracker/internal/pkg/dberrors"
)

// RosterService manages the student, teacher and subject rosters and the
// teacher-to-subject assignments behind them.
type RosterService struct {
	students *repositories.StudentRepository
	teachers *repositories.TeacherRepository
	subjects *repositories.SubjectRepository
	creds    *repositories.AuthRepository
	logger   zerolog.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(
	students *repositories.StudentRepository,
	teachers *repositories.TeacherRepository,
	subjects *repositories.SubjectRepository,
	creds *repositories.AuthRepository,
	logger zerolog.Logger,
) *RosterService {
	return &RosterService{
		students: students,
		teachers: teachers,
		subjects: subjects,
		creds:    creds,
		logger:   logger,
	}
}

// CreateStudent registers a student profile and a student-role credential
// for the same email in one call.
func (s *RosterService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) error {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		USN:     req.USN,
		Email:   req.Email,
		Name:    req.Name,
		Branch:  req.Branch,
		Section: req.Section,
		Batch:   req.Batch,
	}
	if err := s.students.Create(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	cred := &models.Credential{
		Email:       req.Email,
		PasswordEnc: hashed,
		Role:        models.RoleStudent,
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student credential: %w", err)
	}

	s.logger.Info().Str("usn", student.USN).Msg("Student created")
	return nil
}

// GetStudent returns one student profile by USN.
func (s *RosterService) GetStudent(ctx context.Context, usn string) (*models.Student, error) {
	student, err := s.students.GetByUSN(ctx, usn)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListStudents returns all student profiles.
func (s *RosterService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// CountStudents returns the number of registered students.
func (s *RosterService) CountStudents(ctx context.Context) (int64, error) {
	return s.students.Count(ctx)
}

// UpdateStudent updates a student profile. The USN identifies the row and
// cannot change.
func (s *RosterService) UpdateStudent(ctx context.Context, usn string, req dto.UpdateStudentRequest) error {
	student := &models.Student{
		USN:     usn,
		Email:   req.Email,
		Name:    req.Name,
		Branch:  req.Branch,
		Section: req.Section,
		Batch:   req.Batch,
	}
	if err := s.students.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent removes a student profile and its credential. A student
// with recorded marks or attendance is refused, not cascaded.
func (s *RosterService) DeleteStudent(ctx context.Context, usn string) error {
	student, err := s.students.GetByUSN(ctx, usn)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error retrieving student: %w", err)
	}

	if err := s.students.Delete(ctx, usn); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	if err := s.creds.Delete(ctx, student.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", student.Email).Msg("Failed to delete student credential")
	}
	return nil
}

// CreateTeacher registers a teacher profile and a teacher-role credential
// for the same email in one call.
func (s *RosterService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) error {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	teacher := &models.Teacher{
		TID:   req.TID,
		Email: req.Email,
		Name:  req.Name,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	cred := &models.Credential{
		Email:       req.Email,
		PasswordEnc: hashed,
		Role:        models.RoleTeacher,
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating teacher credential: %w", err)
	}

	s.logger.Info().Str("tid", teacher.TID).Msg("Teacher created")
	return nil
}

// GetTeacher returns one teacher profile by TID.
func (s *RosterService) GetTeacher(ctx context.Context, tid string) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByTID(ctx, tid)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// ListTeachers returns all teacher profiles.
func (s *RosterService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	return teachers, nil
}

// CountTeachers returns the number of registered teachers.
func (s *RosterService) CountTeachers(ctx context.Context) (int64, error) {
	return s.teachers.Count(ctx)
}

// UpdateTeacher updates a teacher profile.
func (s *RosterService) UpdateTeacher(ctx context.Context, tid string, req dto.UpdateTeacherRequest) error {
	teacher := &models.Teacher{
		TID:   tid,
		Email: req.Email,
		Name:  req.Name,
	}
	if err := s.teachers.Update(ctx, teacher); err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}
	return nil
}

// DeleteTeacher removes a teacher profile and its credential. A teacher
// with teaching assignments is refused, not cascaded.
func (s *RosterService) DeleteTeacher(ctx context.Context, tid string) error {
	teacher, err := s.teachers.GetByTID(ctx, tid)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		return fmt.Errorf("error retrieving teacher: %w", err)
	}

	if err := s.teachers.Delete(ctx, tid); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if err := s.creds.Delete(ctx, teacher.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", teacher.Email).Msg("Failed to delete teacher credential")
	}
	return nil
}

// CreateSubject registers a course offering for a branch+batch cohort.
func (s *RosterService) CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) error {
	subject := &models.Subject{
		SID:    req.SID,
		SName:  req.SName,
		Branch: req.Branch,
		Batch:  req.Batch,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

// GetSubject returns one subject by SID.
func (s *RosterService) GetSubject(ctx context.Context, sid string) (*models.Subject, error) {
	subject, err := s.subjects.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return subject, nil
}

// UpdateSubject renames a subject.
func (s *RosterService) UpdateSubject(ctx context.Context, sid string, req dto.UpdateSubjectRequest) error {
	if err := s.subjects.Update(ctx, sid, req.SName); err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("error updating subject: %w", err)
	}
	return nil
}

// DeleteSubject removes a subject. A subject still referenced by teaching
// assignments, marks or attendance rows is refused, not cascaded.
func (s *RosterService) DeleteSubject(ctx context.Context, sid string) error {
	if err := s.subjects.Delete(ctx, sid); err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return apperrors.ErrSubjectNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceInUse
		}
		return fmt.Errorf("error deleting subject: %w", err)
	}
	return nil
}

// AssignSubject records that a teacher teaches a subject for a section.
func (s *RosterService) AssignSubject(ctx context.Context, req dto.AssignSubjectRequest) error {
	teaches := &models.Teaches{
		TID:     req.TID,
		SID:     req.SID,
		Section: req.Section,
	}
	if err := s.subjects.AssignTeacher(ctx, teaches); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("teacher or subject not found")
		}
		return fmt.Errorf("error assigning subject: %w", err)
	}
	return nil
}

// TeacherTID resolves a teacher's TID from the email in their token.
func (s *RosterService) TeacherTID(ctx context.Context, email string) (string, error) {
	tid, err := s.teachers.GetTIDByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return "", apperrors.ErrTeacherNotFound
		}
		return "", fmt.Errorf("error resolving teacher: %w", err)
	}
	return tid, nil
}

// TeacherAssignments lists the subject+section pairs a teacher teaches.
func (s *RosterService) TeacherAssignments(ctx context.Context, tid string) ([]*models.TeachingAssignment, error) {
	assignments, err := s.subjects.ListAssignmentsByTID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("error listing teaching assignments: %w", err)
	}
	return assignments, nil
}

// StudentSubjects lists the subjects of the authenticated student's
// branch and batch.
func (s *RosterService) StudentSubjects(ctx context.Context, email string) ([]dto.StudentSubjectRow, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error resolving student: %w", err)
	}

	subjects, err := s.subjects.ListByBranchBatch(ctx, student.Branch, student.Batch)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}

	rows := make([]dto.StudentSubjectRow, 0, len(subjects))
	for _, subject := range subjects {
		rows = append(rows, dto.StudentSubjectRow{SID: subject.SID, SName: subject.SName})
	}
	return rows, nil
}
