package dto

import (
	"time"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// TeacherProfileResponse is the public view of a teacher record
type TeacherProfileResponse struct {
	TeacherID string    `json:"teacher_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeacherCourseListResponse is one page of a teacher's assigned courses
type TeacherCourseListResponse struct {
	Courses      []models.Course `json:"courses"`
	Total        int64           `json:"total"`
	TotalCredits float64         `json:"totalCredits"`
}
