package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nidhi20908/Academic-tracker/internal/app/controllers"
	"github.com/nidhi20908/Academic-tracker/internal/app/models"
	"github.com/nidhi20908/Academic-tracker/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Teacher panel ---
	teacher := router.Group("/teacher")
	teacher.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleTeacher)))
	{
		teacher.POST("/attendance", teacherController.SubmitAttendance)
		teacher.GET("/attendance/:sid/:date", teacherController.AttendanceSheet)
		teacher.POST("/marks", teacherController.SubmitMarks)
		teacher.GET("/marks/:sid/:type/maxmarks", teacherController.MaxMarks)
		teacher.GET("/marks/:sid/:type/initial", teacherController.InitialMarks)
		teacher.GET("/tid", teacherController.TID)
		teacher.GET("/subjects/:tid", teacherController.Subjects)
	}

	// --- Student panel ---
	student := router.Group("/student")
	student.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/attendance", studentController.MonthlyAttendance)
		student.GET("/overall-attendance", studentController.OverallAttendance)
		student.GET("/attendance/summary", studentController.AttendanceSummary)
		student.GET("/marks", studentController.Marks)
		student.GET("/subjects", studentController.Subjects)
	}

	// --- Admin panel ---
	admin := router.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		students := admin.Group("/students")
		{
			students.POST("", adminController.CreateStudent)
			students.GET("", adminController.ListStudents)
			students.GET("/count", adminController.CountStudents)
			students.GET("/:usn", adminController.GetStudent)
			students.PUT("/:usn", adminController.UpdateStudent)
			students.DELETE("/:usn", adminController.DeleteStudent)
		}

		teachers := admin.Group("/teachers")
		{
			teachers.POST("", adminController.CreateTeacher)
			teachers.GET("", adminController.ListTeachers)
			teachers.GET("/count", adminController.CountTeachers)
			teachers.GET("/:tid", adminController.GetTeacher)
			teachers.PUT("/:tid", adminController.UpdateTeacher)
			teachers.DELETE("/:tid", adminController.DeleteTeacher)
		}

		subjects := admin.Group("/subjects")
		{
			subjects.POST("", adminController.CreateSubject)
			subjects.GET("/:sid", adminController.GetSubject)
			subjects.PUT("/:sid", adminController.UpdateSubject)
			subjects.DELETE("/:sid", adminController.DeleteSubject)
		}

		admin.POST("/teaches", adminController.AssignSubject)
	}
}
