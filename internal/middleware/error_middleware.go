package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses in one place.
// Unclassified store failures are logged with detail and answered with a
// generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(404, dto.NewErrorResponse("Teacher not found"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrGradeNotFound):
		c.JSON(404, dto.NewErrorResponse("Grade record not found"))
	case errors.Is(err, apperrors.ErrCreditNotFound):
		c.JSON(404, dto.NewErrorResponse("Credit record not found"))
	case errors.Is(err, apperrors.ErrNoCreditsForStudent):
		c.JSON(404, dto.NewErrorResponse("No credits found for this student"))
	case errors.Is(err, apperrors.ErrCertificateNotFound):
		c.JSON(404, dto.NewErrorResponse("Certificate not found"))
	case errors.Is(err, apperrors.ErrCertificateTypeNotFound):
		c.JSON(404, dto.NewErrorResponse("Certificate type not found"))
	case errors.Is(err, apperrors.ErrScheduleNotFound):
		c.JSON(404, dto.NewErrorResponse("Schedule not found"))
	case errors.Is(err, apperrors.ErrUpdateRequestNotFound):
		c.JSON(404, dto.NewErrorResponse("Update request not found"))
	case errors.Is(err, apperrors.ErrCalendarEventNotFound):
		c.JSON(404, dto.NewErrorResponse("Calendar event not found"))
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(409, dto.NewErrorResponse("Course ID already exists"))
	case errors.Is(err, apperrors.ErrGradeAlreadyExists):
		c.JSON(400, dto.NewErrorResponse("Grade already exists for this student and course"))
	case errors.Is(err, apperrors.ErrCreditAlreadyExists):
		c.JSON(400, dto.NewErrorResponse("Credit record already exists"))
	case errors.Is(err, apperrors.ErrInvalidCreditRef):
		c.JSON(400, dto.NewErrorResponse("Invalid student_id or course_id"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrMissingFields),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrNotCourseTeacher):
		c.JSON(403, dto.NewErrorResponse("Teacher is not assigned to this course"))
	default:
		logger.Error().
			Err(err).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("Unhandled error in request")
		c.JSON(500, dto.NewErrorResponse("Internal server error"))
	}
}
