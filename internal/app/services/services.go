package services

import (
	"context"

	"github.com/nidhi20908/Academic-tracker/internal/app/models"
)

// StudentResolver resolves a student profile from an authenticated email.
// Student-scoped operations never accept a client-supplied USN; the
// caller's own row is always derived through this lookup.
type StudentResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// Services defined in this package:
// - AuthService: credential verification and token issuance
// - AttendanceService: attendance batch upserts and calendar/ratio reads
// - MarksService: marks batch upserts and per-exam reads
// - RosterService: admin-side students/teachers/subjects/teaches management
