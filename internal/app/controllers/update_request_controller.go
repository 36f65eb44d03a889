package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// UpdateRequestController handles the personal-info update-request
// endpoints
type UpdateRequestController struct {
	updateRequestService *services.UpdateRequestService
}

// NewUpdateRequestController creates a new UpdateRequestController
func NewUpdateRequestController(updateRequestService *services.UpdateRequestService) *UpdateRequestController {
	return &UpdateRequestController{
		updateRequestService: updateRequestService,
	}
}

// SubmitUpdateRequest records a new pending request
// @Summary Submit an update request
// @Tags update-requests
// @Accept json
// @Produce json
// @Param request body dto.SubmitUpdateRequestRequest true "Proposed personal fields"
// @Success 201 {object} dto.SubmitUpdateRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /submitUpdateRequest [post]
func (c *UpdateRequestController) SubmitUpdateRequest(ctx *gin.Context) {
	var req dto.SubmitUpdateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	request := &models.StudentUpdateRequest{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		DateOfBirth: req.DateOfBirth,
		IDCard:      req.IDCard,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := c.updateRequestService.Submit(ctx, request); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmitUpdateRequestResponse{
		Message:   "Update request submitted successfully",
		RequestID: request.ID,
	})
}

// GetPendingUpdateRequest returns the latest pending request of a
// student, or a literal null body when none is pending
// @Summary Get a student's pending update request
// @Tags update-requests
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.StudentUpdateRequest
// @Router /getPendingUpdateRequest/{id} [get]
func (c *UpdateRequestController) GetPendingUpdateRequest(ctx *gin.Context) {
	request, err := c.updateRequestService.GetPending(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Serializes to `null` when nothing is pending
	ctx.JSON(http.StatusOK, request)
}

// GetAllUpdateRequests lists requests with per-status counts
// @Summary List update requests
// @Tags update-requests
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.UpdateRequestListResponse
// @Router /getAllUpdateRequests [get]
func (c *UpdateRequestController) GetAllUpdateRequests(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.updateRequestService.List(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ReviewUpdateRequest resolves a pending request
// @Summary Review an update request
// @Description Approving copies the proposed fields onto the student record
// @Tags update-requests
// @Accept json
// @Produce json
// @Param request body dto.ReviewUpdateRequestRequest true "Review outcome"
// @Success 200 {object} dto.ReviewUpdateRequestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reviewUpdateRequest [post]
func (c *UpdateRequestController) ReviewUpdateRequest(ctx *gin.Context) {
	var req dto.ReviewUpdateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Request ID, status and review comment are required"))
		return
	}

	if err := c.updateRequestService.Review(ctx, req.RequestID, req.Status, &req.ReviewComment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReviewUpdateRequestResponse{
		Message:   "Review completed",
		RequestID: req.RequestID,
	})
}
