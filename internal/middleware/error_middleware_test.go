package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, err)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Error
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.ErrStudentNotFound, 404, "Student not found"},
		{apperrors.ErrCourseNotFound, 404, "Course not found"},
		{apperrors.ErrNoCreditsForStudent, 404, "No credits found for this student"},
		{apperrors.ErrCertificateTypeNotFound, 404, "Certificate type not found"},
		{apperrors.ErrCalendarEventNotFound, 404, "Calendar event not found"},
		{apperrors.ErrCourseAlreadyExists, 409, "Course ID already exists"},
		{apperrors.ErrGradeAlreadyExists, 400, "Grade already exists for this student and course"},
		{apperrors.ErrInvalidCreditRef, 400, "Invalid student_id or course_id"},
		{apperrors.ErrInvalidCredentials, 401, "Invalid credentials"},
		{apperrors.ErrNotCourseTeacher, 403, "Teacher is not assigned to this course"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			status, message := handleError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("looking up student 2021001: %w", apperrors.ErrStudentNotFound)

	status, message := handleError(t, wrapped)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Student not found", message)
}

func TestHandleAPIErrorValidationCarriesDetail(t *testing.T) {
	err := fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidationFailed)

	status, message := handleError(t, err)
	assert.Equal(t, 400, status)
	assert.Contains(t, message, "date_of_birth must be YYYY-MM-DD")
}

func TestHandleAPIErrorUnknownErrorIsOpaque(t *testing.T) {
	status, message := handleError(t, errors.New("connection reset by peer"))

	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", message)
}
