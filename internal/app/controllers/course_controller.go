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

// CourseController handles course catalog endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// AddCourse creates a course
// @Summary Add a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.AddCourseRequest true "Course information"
// @Success 201 {object} dto.CourseMutationResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /addCourse [post]
func (c *CourseController) AddCourse(ctx *gin.Context) {
	var req dto.AddCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	course := &models.Course{
		CourseID:    req.CourseID,
		CourseName:  req.CourseName,
		Credits:     *req.Credits,
		ClassName:   req.ClassName,
		Description: req.Description,
	}
	if err := c.courseService.AddCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CourseMutationResponse{
		Message:  "Course added successfully",
		CourseID: course.CourseID,
	})
}

// GetCourse returns one bare course object
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorResponse
// @Router /getCourse/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse replaces the mutable course fields
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.CourseMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateCourse/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course name, credits and class name are required"))
		return
	}

	course := &models.Course{
		CourseID:    ctx.Param("id"),
		CourseName:  req.CourseName,
		Credits:     *req.Credits,
		ClassName:   req.ClassName,
		Description: req.Description,
	}
	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseMutationResponse{
		Message:  "Course updated successfully",
		CourseID: course.CourseID,
	})
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteCourse/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID := ctx.Param("id")
	if err := c.courseService.DeleteCourse(ctx, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseMutationResponse{
		Message:  "Course deleted successfully",
		CourseID: courseID,
	})
}

// GetAllCourses lists courses with credit aggregates
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.CourseListResponse
// @Router /getAllCourses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.courseService.ListCourses(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
