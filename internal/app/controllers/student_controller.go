package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// StudentController handles student account endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterStudent creates a student account
// @Summary Register a student
// @Description Creates a student account; the student number becomes the login account
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.RegisterStudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /registerStudent [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID and name are required"))
		return
	}

	if err := c.studentService.Register(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterStudentResponse{
		Message:   "Student registered successfully",
		StudentID: req.StudentID,
	})
}

// GetStudent returns one student record
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Router /getStudent/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student account
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteStudent/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully"})
}

// GetAllStudents lists students with gender counts
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.StudentListResponse
// @Router /getAllStudents [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	resp, err := c.studentService.ListStudents(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetStudentSchedules returns the timetable of the student's class
// @Summary Get a student's timetable
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentSchedulesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /getStudentSchedules/{id} [get]
func (c *StudentController) GetStudentSchedules(ctx *gin.Context) {
	schedules, err := c.studentService.GetStudentSchedules(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentSchedulesResponse{
		Message:   "Schedules retrieved successfully",
		Schedules: schedules,
	})
}
