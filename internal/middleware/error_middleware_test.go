package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nidhi20908/Academic-tracker/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "student not found", err: apperrors.ErrStudentNotFound, wantStatus: http.StatusNotFound},
		{name: "teacher not found", err: apperrors.ErrTeacherNotFound, wantStatus: http.StatusNotFound},
		{name: "max marks not found", err: apperrors.ErrMaxMarksNotFound, wantStatus: http.StatusNotFound},
		{name: "wrapped not found", err: apperrors.NewResourceNotFoundError("teacher or subject not found"), wantStatus: http.StatusNotFound},
		{name: "email exists", err: apperrors.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "still referenced", err: apperrors.ErrResourceInUse, wantStatus: http.StatusConflict},
		{name: "validation failed", err: fmt.Errorf("%w: empty batch", apperrors.ErrValidationFailed), wantStatus: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "10.0.0.5") {
		t.Errorf("internal detail leaked into response body: %s", body)
	}
}
