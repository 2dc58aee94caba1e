package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/services"
	"github.com/nidhi20908/Academic-tracker/internal/middleware"
)

// StudentController serves the student panel. Every handler resolves the
// student's USN from the email in the token, so query parameters can only
// pick subjects and periods, never another student.
type StudentController struct {
	attendanceService *services.AttendanceService
	marksService      *services.MarksService
	rosterService     *services.RosterService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	attendanceService *services.AttendanceService,
	marksService *services.MarksService,
	rosterService *services.RosterService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		attendanceService: attendanceService,
		marksService:      marksService,
		rosterService:     rosterService,
		logger:            logger,
	}
}

// MonthlyAttendance returns the matched days of one month for a subject.
// Days without a row mean no class was held.
func (c *StudentController) MonthlyAttendance(ctx *gin.Context) {
	email := ctx.GetString("email")
	sid := ctx.Query("SID")

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid month")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rows, err := c.attendanceService.MonthlyCalendar(ctx.Request.Context(), email, sid, year, month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// OverallAttendance returns every stored status for a subject so the
// client can compute its own ratio.
func (c *StudentController) OverallAttendance(ctx *gin.Context) {
	email := ctx.GetString("email")
	sid := ctx.Query("SID")

	rows, err := c.attendanceService.Overall(ctx.Request.Context(), email, sid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// AttendanceSummary returns the server-computed attendance ratio for a
// subject.
func (c *StudentController) AttendanceSummary(ctx *gin.Context) {
	email := ctx.GetString("email")
	sid := ctx.Query("SID")

	summary, err := c.attendanceService.OverallSummary(ctx.Request.Context(), email, sid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// Marks returns the authenticated student's exam results for a subject.
func (c *StudentController) Marks(ctx *gin.Context) {
	email := ctx.GetString("email")
	sid := ctx.Query("SID")

	rows, err := c.marksService.StudentMarks(ctx.Request.Context(), email, sid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// Subjects lists the subjects of the student's branch and batch.
func (c *StudentController) Subjects(ctx *gin.Context) {
	email := ctx.GetString("email")

	rows, err := c.rosterService.StudentSubjects(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}
