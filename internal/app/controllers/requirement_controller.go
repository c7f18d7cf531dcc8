package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/services"
	"github.com/derya/retakereg/internal/middleware"
)

// RequirementController handles required-course list operations
type RequirementController struct {
	requirementService services.RequirementService
}

// NewRequirementController creates a new RequirementController
func NewRequirementController(requirementService services.RequirementService) *RequirementController {
	return &RequirementController{
		requirementService: requirementService,
	}
}

// CreateRequirement handles adding a subject to a student's required list
// @Summary Create a required-course record
// @Description Marks a subject as required for a student in a term
// @Tags required-courses
// @Accept json
// @Produce json
// @Param request body dto.CreateRequirementRequest true "Requirement information"
// @Success 201 {object} dto.APIResponse{data=dto.RequirementResponse} "Requirement created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Requirement already recorded for this student, subject and term"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /required-courses [post]
func (c *RequirementController) CreateRequirement(ctx *gin.Context) {
	var req dto.CreateRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	requirement, err := c.requirementService.CreateRequirement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(requirement))
}

// GetStudentRequirements handles retrieving a student's required courses
// @Summary List a student's required courses
// @Description Retrieves the subjects a student must retake, each marked satisfied when an active enrollment already covers it
// @Tags required-courses
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param term query string false "Filter by academic term (e.g. 113-1)"
// @Success 200 {object} dto.APIResponse{data=dto.RequirementListResponse} "Required courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/required-courses [get]
func (c *RequirementController) GetStudentRequirements(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var term *string
	if t := ctx.Query("term"); t != "" {
		term = &t
	}

	requirements, err := c.requirementService.GetStudentRequirements(ctx, studentID, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requirements))
}

// DeleteRequirement handles removing a required-course record
// @Summary Delete a required-course record
// @Description Removes a subject from a student's required list
// @Tags required-courses
// @Accept json
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 200 {object} dto.APIResponse "Requirement deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid requirement ID"
// @Failure 404 {object} dto.ErrorResponse "Requirement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /required-courses/{id} [delete]
func (c *RequirementController) DeleteRequirement(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid requirement ID")
		errorDetail = errorDetail.WithDetails("Requirement ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.requirementService.DeleteRequirement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Requirement deleted successfully"}))
}
