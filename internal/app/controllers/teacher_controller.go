package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/services"
	"github.com/nidhi20908/Academic-tracker/internal/middleware"
)

// TeacherController serves the teacher panel: attendance and marks entry
// plus the lookups that drive the entry sheets.
type TeacherController struct {
	attendanceService *services.AttendanceService
	marksService      *services.MarksService
	rosterService     *services.RosterService
	logger            zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(
	attendanceService *services.AttendanceService,
	marksService *services.MarksService,
	rosterService *services.RosterService,
	logger zerolog.Logger,
) *TeacherController {
	return &TeacherController{
		attendanceService: attendanceService,
		marksService:      marksService,
		rosterService:     rosterService,
		logger:            logger,
	}
}

// SubmitAttendance applies a batch of attendance rows. Resubmitting a row
// for the same (date, usn, subject) overwrites the stored status.
func (c *TeacherController) SubmitAttendance(ctx *gin.Context) {
	var req dto.AttendanceBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid attendance batch payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.attendanceService.SubmitBatch(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Attendance recorded"})
}

// AttendanceSheet returns the stored statuses for a subject and date, for
// pre-filling the entry sheet.
func (c *TeacherController) AttendanceSheet(ctx *gin.Context) {
	sid := ctx.Param("sid")
	date := ctx.Param("date")

	rows, err := c.attendanceService.SheetForDate(ctx.Request.Context(), sid, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// SubmitMarks applies a batch of marks rows keyed by (usn, subject, exam
// type).
func (c *TeacherController) SubmitMarks(ctx *gin.Context) {
	var req dto.MarksBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid marks batch payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.marksService.SubmitBatch(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Marks recorded"})
}

// MaxMarks returns the maximum marks recorded for a subject and exam type.
func (c *TeacherController) MaxMarks(ctx *gin.Context) {
	sid := ctx.Param("sid")
	examType := ctx.Param("type")

	maxMarks, err := c.marksService.MaxMarks(ctx.Request.Context(), sid, examType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MaxMarksResponse{MaxMarks: maxMarks})
}

// InitialMarks returns the stored marks for a subject and exam type, for
// pre-filling the entry sheet.
func (c *TeacherController) InitialMarks(ctx *gin.Context) {
	sid := ctx.Param("sid")
	examType := ctx.Param("type")

	rows, err := c.marksService.InitialMarks(ctx.Request.Context(), sid, examType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// TID resolves the authenticated teacher's identifier from the email in
// their token.
func (c *TeacherController) TID(ctx *gin.Context) {
	email := ctx.GetString("email")

	tid, err := c.rosterService.TeacherTID(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TIDResponse{TID: tid})
}

// Subjects lists the subject and section assignments of a teacher.
func (c *TeacherController) Subjects(ctx *gin.Context) {
	tid := ctx.Param("tid")

	assignments, err := c.rosterService.TeacherAssignments(ctx.Request.Context(), tid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}
