package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/derya/retakereg/internal/app/controllers"
	"github.com/derya/retakereg/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	admissionController *controllers.AdmissionController,
	offeringController *controllers.OfferingController,
	enrollmentController *controllers.EnrollmentController,
	windowController *controllers.WindowController,
	studentController *controllers.StudentController,
	requirementController *controllers.RequirementController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Enrollment routes. POST runs the admission protocol; listing and
	// cancellation operate on existing records.
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", admissionController.Admit)
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.POST("/:id/cancel", enrollmentController.CancelEnrollment)
	}

	// Student roster routes, plus the student-facing views hanging off a
	// roster entry.
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/enrollments", enrollmentController.GetStudentEnrollments)
		students.GET("/:id/required-courses", requirementController.GetStudentRequirements)
	}

	// Course offering catalog routes
	offerings := v1.Group("/offerings")
	{
		offerings.POST("", offeringController.CreateOffering)
		offerings.GET("", offeringController.GetAllOfferings)
		offerings.GET("/:id", offeringController.GetOfferingByID)
		offerings.PUT("/:id", offeringController.UpdateOffering)
		offerings.DELETE("/:id", offeringController.DeleteOffering)
	}

	// Registration window routes
	windows := v1.Group("/registration-windows")
	{
		windows.GET("", windowController.GetAllWindows)
		windows.GET("/current", windowController.GetCurrentWindow)
		windows.PUT("/:term", windowController.UpsertWindow)
	}

	// Required-course list routes
	requiredCourses := v1.Group("/required-courses")
	{
		requiredCourses.POST("", requirementController.CreateRequirement)
		requiredCourses.DELETE("/:id", requirementController.DeleteRequirement)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are registered separately via SetupSwagger
}
