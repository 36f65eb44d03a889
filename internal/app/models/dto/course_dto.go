package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// AddCourseRequest creates a course. Credits must parse as a
// non-negative number.
type AddCourseRequest struct {
	CourseID    string   `json:"course_id" binding:"required"`
	CourseName  string   `json:"course_name" binding:"required"`
	Credits     *float64 `json:"credits" binding:"required,gte=0"`
	ClassName   string   `json:"class_name" binding:"required"`
	Description *string  `json:"description"`
}

// UpdateCourseRequest replaces the mutable course fields
type UpdateCourseRequest struct {
	CourseName  string   `json:"course_name" binding:"required"`
	Credits     *float64 `json:"credits" binding:"required,gte=0"`
	ClassName   string   `json:"class_name" binding:"required"`
	Description *string  `json:"description"`
}

// CourseMutationResponse echoes the affected course id
type CourseMutationResponse struct {
	Message  string `json:"message"`
	CourseID string `json:"courseId"`
}

// CourseListResponse is one page of courses plus credit aggregates
type CourseListResponse struct {
	Courses        []models.Course `json:"courses"`
	Total          int64           `json:"total"`
	TotalCredits   float64         `json:"totalCredits"`
	AverageCredits float64         `json:"averageCredits"`
}
