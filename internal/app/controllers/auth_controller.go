package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
)

// AuthController handles login and password-change endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// AdminLogin handles the administrator login
// @Summary Admin login
// @Description Validates the administrator credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /adminLogin [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))
		return
	}

	if err := c.authService.AdminLogin(req.Username, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Message: "Admin login successful",
		IsAdmin: true,
	})
}

// StudentLogin handles the student login
// @Summary Student login
// @Description Authenticates a student by account and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Student credentials"
// @Success 200 {object} dto.StudentLoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /studentLogin [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Account and password are required"))
		return
	}

	student, err := c.authService.StudentLogin(ctx, req.Account, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{
		Message:     "Login successful",
		StudentID:   student.StudentID,
		StudentName: student.StudentName,
	})
}

// TeacherLogin handles the teacher login
// @Summary Teacher login
// @Description Authenticates a teacher by staff number and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TeacherLoginRequest true "Teacher credentials"
// @Success 200 {object} dto.TeacherLoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /teacherLogin [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	var req dto.TeacherLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Account and password are required"))
		return
	}

	teacher, err := c.authService.TeacherLogin(ctx, req.Account, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherLoginResponse{
		Message:   "Login successful",
		TeacherID: teacher.TeacherID,
		Name:      teacher.Name,
		Email:     teacher.Email,
	})
}

// UpdateStudentPassword changes a student's password
// @Summary Change student password
// @Description Verifies the old password, then overwrites it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangeStudentPasswordRequest true "Password change"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /updateStudentPassword [put]
func (c *AuthController) UpdateStudentPassword(ctx *gin.Context) {
	var req dto.ChangeStudentPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID, old password and new password are required"))
		return
	}

	if err := c.authService.ChangeStudentPassword(ctx, req.StudentID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// UpdateTeacherPassword changes a teacher's password
// @Summary Change teacher password
// @Description Verifies the old password, then overwrites it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangeTeacherPasswordRequest true "Password change"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /updateTeacherPassword [put]
func (c *AuthController) UpdateTeacherPassword(ctx *gin.Context) {
	var req dto.ChangeTeacherPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Teacher ID, old password and new password are required"))
		return
	}

	if err := c.authService.ChangeTeacherPassword(ctx, req.TeacherID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}
