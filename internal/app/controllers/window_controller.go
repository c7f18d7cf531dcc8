package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/services"
	"github.com/derya/retakereg/internal/middleware"
)

// WindowController handles registration window operations
type WindowController struct {
	windowService services.WindowService
}

// NewWindowController creates a new WindowController
func NewWindowController(windowService services.WindowService) *WindowController {
	return &WindowController{
		windowService: windowService,
	}
}

// GetCurrentWindow handles retrieving a term's registration window
// @Summary Get a term's registration window
// @Description Retrieves the registration window configured for the given term, including whether it is open right now
// @Tags registration-windows
// @Accept json
// @Produce json
// @Param term query string true "Academic term (e.g. 113-1)"
// @Success 200 {object} dto.APIResponse{data=dto.WindowResponse} "Window retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid term"
// @Failure 404 {object} dto.ErrorResponse "No window configured for this term"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registration-windows/current [get]
func (c *WindowController) GetCurrentWindow(ctx *gin.Context) {
	term := ctx.Query("term")
	if term == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing term parameter")
		errorDetail = errorDetail.WithDetails("Provide the academic term, e.g. ?term=113-1")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	window, err := c.windowService.GetWindow(ctx, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(window))
}

// GetAllWindows handles retrieving every configured window
// @Summary List registration windows
// @Description Retrieves the registration windows of all terms, newest term first
// @Tags registration-windows
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.WindowListResponse} "Windows retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registration-windows [get]
func (c *WindowController) GetAllWindows(ctx *gin.Context) {
	windows, err := c.windowService.GetAllWindows(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(windows))
}

// UpsertWindow handles setting or replacing a term's registration window
// @Summary Set a term's registration window
// @Description Creates or replaces the registration window of a term. The latest update wins; a missing bound leaves that side unbounded.
// @Tags registration-windows
// @Accept json
// @Produce json
// @Param term path string true "Academic term (e.g. 113-1)"
// @Param request body dto.UpsertWindowRequest true "Window bounds"
// @Success 200 {object} dto.APIResponse{data=dto.WindowResponse} "Window saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registration-windows/{term} [put]
func (c *WindowController) UpsertWindow(ctx *gin.Context) {
	term := ctx.Param("term")

	var req dto.UpsertWindowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	window, err := c.windowService.UpsertWindow(ctx, term, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(window))
}
