package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/services"
	"github.com/derya/retakereg/internal/middleware"
)

// AdmissionController handles enrollment admission requests
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// Admit handles a registration request for a course offering
// @Summary Request enrollment into a course offering
// @Description Runs the admission protocol for the given student and offering. Rejections (closed window, schedule conflict, duplicate enrollment) are decisions, returned with 200; only unknown offerings, lock timeouts and storage failures map to error statuses.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.AdmitRequest true "Admission request"
// @Success 200 {object} dto.APIResponse{data=dto.AdmissionDecisionResponse} "Admission decided"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Course offering or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Admission lock could not be acquired in time"
// @Router /enrollments [post]
func (c *AdmissionController) Admit(ctx *gin.Context) {
	var req dto.AdmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	decision, err := c.admissionService.Admit(ctx, req.StudentID, req.CourseOfferingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromAdmissionDecision(decision)))
}
