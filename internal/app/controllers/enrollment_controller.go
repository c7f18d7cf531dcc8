package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/services"
	"github.com/derya/retakereg/internal/middleware"
)

// EnrollmentController handles enrollment record operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetStudentEnrollments handles retrieving a student's enrollments
// @Summary List a student's enrollments
// @Description Retrieves the enrollments of a student with optional term and status filters, newest first
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param term query string false "Filter by academic term (e.g. 113-1)"
// @Param status query string false "Filter by status (PENDING, ACTIVE, CANCELLED, REJECTED_CONFLICT)"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/enrollments [get]
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var term, status *string
	if t := ctx.Query("term"); t != "" {
		term = &t
	}
	if s := ctx.Query("status"); s != "" {
		status = &s
	}

	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx, studentID, term, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments))
}

// GetAllEnrollments handles the staff-facing enrollment listing
// @Summary List enrollments
// @Description Retrieves enrollments across students with filtering and pagination
// @Tags enrollments
// @Accept json
// @Produce json
// @Param term query string false "Filter by academic term"
// @Param subject query string false "Filter by subject code"
// @Param status query string false "Filter by status (PENDING, ACTIVE, CANCELLED, REJECTED_CONFLICT)"
// @Param studentId query int false "Filter by student ID"
// @Param offeringId query int false "Filter by course offering ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	var filter dto.EnrollmentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	response, err := c.enrollmentService.ListEnrollments(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// CancelEnrollment handles cancelling an enrollment
// @Summary Cancel an enrollment
// @Description Transitions a pending or active enrollment to CANCELLED
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment cancelled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Enrollment is not cancellable in its current status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/cancel [post]
func (c *EnrollmentController) CancelEnrollment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment ID")
		errorDetail = errorDetail.WithDetails("Enrollment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.CancelEnrollment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}
