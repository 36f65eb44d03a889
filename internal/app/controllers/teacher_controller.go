package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// TeacherController handles teacher profile and per-teacher listings
type TeacherController struct {
	teacherService *services.TeacherService
	gradeService   *services.GradeService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService, gradeService *services.GradeService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		gradeService:   gradeService,
	}
}

// GetTeacherProfile returns one teacher's public profile
// @Summary Get teacher profile
// @Tags teachers
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Success 200 {object} dto.TeacherProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /getTeacherProfile/{teacherId} [get]
func (c *TeacherController) GetTeacherProfile(ctx *gin.Context) {
	teacher, err := c.teacherService.GetProfile(ctx, ctx.Param("teacherId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherProfileResponse{
		TeacherID: teacher.TeacherID,
		Name:      teacher.Name,
		Email:     teacher.Email,
		CreatedAt: teacher.CreatedAt,
		UpdatedAt: teacher.UpdatedAt,
	})
}

// GetTeacherCourses lists a teacher's assigned courses
// @Summary List a teacher's courses
// @Tags teachers
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.TeacherCourseListResponse
// @Router /getTeacherCourses/{teacherId} [get]
func (c *TeacherController) GetTeacherCourses(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.teacherService.ListCourses(ctx, ctx.Param("teacherId"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetTeacherGrades lists grades in a teacher's courses
// @Summary List a teacher's grades
// @Tags teachers
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.TeacherGradeListResponse
// @Router /getTeacherGrades/{teacherId} [get]
func (c *TeacherController) GetTeacherGrades(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.teacherService.ListGrades(ctx, ctx.Param("teacherId"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddTeacherGrade enters a grade on behalf of a teacher
// @Summary Add a grade as a teacher
// @Description The teacher must be assigned to the course
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.AddTeacherGradeRequest true "Grade information"
// @Success 200 {object} dto.AddGradeResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /addTeacherGrade [post]
func (c *TeacherController) AddTeacherGrade(ctx *gin.Context) {
	var req dto.AddTeacherGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Teacher ID, student ID, course ID and a score between 0 and 100 are required"))
		return
	}

	grade, err := c.gradeService.AddTeacherGrade(ctx, req.TeacherID, req.StudentID, req.CourseID, *req.Score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddGradeResponse{
		Message: "Grade added successfully",
		GradeID: grade.GradeID,
	})
}
