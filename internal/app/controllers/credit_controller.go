package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// CreditController handles credit record endpoints
type CreditController struct {
	creditService *services.CreditService
}

// NewCreditController creates a new CreditController
func NewCreditController(creditService *services.CreditService) *CreditController {
	return &CreditController{
		creditService: creditService,
	}
}

// AddCredit records credits for one (student, course) pair
// @Summary Add a credit record
// @Tags credits
// @Accept json
// @Produce json
// @Param request body dto.AddCreditRequest true "Credit information"
// @Success 201 {object} dto.AddCreditResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /addCredit [post]
func (c *CreditController) AddCredit(ctx *gin.Context) {
	var req dto.AddCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	credit := &models.Credit{
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Credits:    *req.Credits,
	}
	if err := c.creditService.AddCredit(ctx, credit); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddCreditResponse{
		Message:   "Credit added successfully",
		StudentID: credit.StudentID,
		CourseID:  credit.CourseID,
	})
}

// GetStudentCredits lists one student's credit records
// @Summary Get a student's credits
// @Tags credits
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentCreditsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /getStudentCredits/{id} [get]
func (c *CreditController) GetStudentCredits(ctx *gin.Context) {
	resp, err := c.creditService.GetStudentCredits(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetAllCredits lists credit records with aggregates
// @Summary List credit records
// @Tags credits
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.CreditListResponse
// @Router /getAllCredits [get]
func (c *CreditController) GetAllCredits(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.creditService.ListCredits(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateCredit replaces a credit record by row id
// @Summary Update a credit record
// @Tags credits
// @Accept json
// @Produce json
// @Param id path int true "Credit record ID"
// @Param request body dto.UpdateCreditRequest true "Credit information"
// @Success 200 {object} dto.CreditMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateCredit/{id} [put]
func (c *CreditController) UpdateCredit(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid credit record ID"))
		return
	}

	var req dto.UpdateCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	credit := &models.Credit{
		ID:         id,
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Credits:    *req.Credits,
	}
	if err := c.creditService.UpdateCredit(ctx, credit); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreditMutationResponse{
		Message: "Credit updated successfully",
		ID:      idStr,
	})
}

// DeleteCredit removes a credit record by row id
// @Summary Delete a credit record
// @Tags credits
// @Produce json
// @Param id path int true "Credit record ID"
// @Success 200 {object} dto.CreditMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteCredit/{id} [delete]
func (c *CreditController) DeleteCredit(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid credit record ID"))
		return
	}

	if err := c.creditService.DeleteCredit(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreditMutationResponse{
		Message: "Credit deleted successfully",
		ID:      idStr,
	})
}
