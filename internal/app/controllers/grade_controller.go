package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// GradeController handles grade entry and listing endpoints
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// AddGrade enters a score for one (student, course) pair
// @Summary Add a grade
// @Description Enters a score after checking the student, the course and that no grade exists yet
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.AddGradeRequest true "Grade information"
// @Success 200 {object} dto.AddGradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /addGrade [post]
func (c *GradeController) AddGrade(ctx *gin.Context) {
	var req dto.AddGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID, course ID and a score between 0 and 100 are required"))
		return
	}

	grade, err := c.gradeService.AddGrade(ctx, req.StudentID, req.CourseID, *req.Score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddGradeResponse{
		Message: "Grade added successfully",
		GradeID: grade.GradeID,
	})
}

// UpdateGrade revises an existing grade
// @Summary Update a grade
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.UpdateGradeRequest true "Grade revision"
// @Success 200 {object} dto.UpdateGradeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateGrade [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID, course ID and a score between 0 and 100 are required"))
		return
	}

	affected, err := c.gradeService.UpdateGrade(ctx, req.StudentID, req.CourseID, *req.Score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateGradeResponse{
		Message:      "Grade updated successfully",
		AffectedRows: affected,
	})
}

// GetAllGrades lists grades with score aggregates
// @Summary List grades
// @Tags grades
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.GradeListResponse
// @Router /getAllGrades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.gradeService.ListGrades(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetStudentGrades lists one student's grades with course details
// @Summary Get a student's grades
// @Tags grades
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentGradesResponse
// @Router /getStudentGrades/{id} [get]
func (c *GradeController) GetStudentGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetStudentGrades(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentGradesResponse{
		Message: "Grades retrieved successfully",
		Grades:  grades,
	})
}

// DeleteGrade removes a grade by id
// @Summary Delete a grade
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.GradeMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteGrade/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid grade ID"))
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GradeMutationResponse{
		Message: "Grade deleted successfully",
		GradeID: idStr,
	})
}
