package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nidhi20908/Academic-tracker/internal/app/models/dto"
	"github.com/nidhi20908/Academic-tracker/internal/app/services"
	"github.com/nidhi20908/Academic-tracker/internal/middleware"
)

// AdminController manages the rosters behind the admin panel.
type AdminController struct {
	rosterService *services.RosterService
	logger        zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(rosterService *services.RosterService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		rosterService: rosterService,
		logger:        logger,
	}
}

// CreateStudent registers a student and a student-role login.
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.CreateStudent(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Student created"})
}

// GetStudent returns one student profile.
func (c *AdminController) GetStudent(ctx *gin.Context) {
	student, err := c.rosterService.GetStudent(ctx.Request.Context(), ctx.Param("usn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// ListStudents returns all student profiles.
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CountStudents returns the number of registered students.
func (c *AdminController) CountStudents(ctx *gin.Context) {
	count, err := c.rosterService.CountStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// UpdateStudent updates a student profile.
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.UpdateStudent(ctx.Request.Context(), ctx.Param("usn"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student updated"})
}

// DeleteStudent removes a student profile and its login.
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	if err := c.rosterService.DeleteStudent(ctx.Request.Context(), ctx.Param("usn")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}

// CreateTeacher registers a teacher and a teacher-role login.
func (c *AdminController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create teacher payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.CreateTeacher(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Teacher created"})
}

// GetTeacher returns one teacher profile.
func (c *AdminController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.rosterService.GetTeacher(ctx.Request.Context(), ctx.Param("tid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teacher)
}

// ListTeachers returns all teacher profiles.
func (c *AdminController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.rosterService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teachers)
}

// CountTeachers returns the number of registered teachers.
func (c *AdminController) CountTeachers(ctx *gin.Context) {
	count, err := c.rosterService.CountTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// UpdateTeacher updates a teacher profile.
func (c *AdminController) UpdateTeacher(ctx *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.UpdateTeacher(ctx.Request.Context(), ctx.Param("tid"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Teacher updated"})
}

// DeleteTeacher removes a teacher profile and its login.
func (c *AdminController) DeleteTeacher(ctx *gin.Context) {
	if err := c.rosterService.DeleteTeacher(ctx.Request.Context(), ctx.Param("tid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Teacher deleted"})
}

// CreateSubject registers a course offering.
func (c *AdminController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.CreateSubject(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Subject created"})
}

// GetSubject returns one subject.
func (c *AdminController) GetSubject(ctx *gin.Context) {
	subject, err := c.rosterService.GetSubject(ctx.Request.Context(), ctx.Param("sid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subject)
}

// UpdateSubject renames a subject.
func (c *AdminController) UpdateSubject(ctx *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.UpdateSubject(ctx.Request.Context(), ctx.Param("sid"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subject updated"})
}

// DeleteSubject removes a subject.
func (c *AdminController) DeleteSubject(ctx *gin.Context) {
	if err := c.rosterService.DeleteSubject(ctx.Request.Context(), ctx.Param("sid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subject deleted"})
}

// AssignSubject assigns a teacher to a subject for a section.
func (c *AdminController) AssignSubject(ctx *gin.Context) {
	var req dto.AssignSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.AssignSubject(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Subject assigned"})
}
