package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// AddGradeRequest enters a score for one (student, course) pair.
// Score is bounded to [0, 100]; zero is a legal score, hence the pointer.
type AddGradeRequest struct {
	StudentID string   `json:"student_id" binding:"required"`
	CourseID  string   `json:"course_id" binding:"required"`
	Score     *float64 `json:"score" binding:"required,gte=0,lte=100"`
}

// AddGradeResponse returns the generated grade id
type AddGradeResponse struct {
	Message string `json:"message"`
	GradeID int64  `json:"grade_id"`
}

// UpdateGradeRequest revises an existing grade (grade objection)
type UpdateGradeRequest struct {
	StudentID string   `json:"student_id" binding:"required"`
	CourseID  string   `json:"course_id" binding:"required"`
	Score     *float64 `json:"score" binding:"required,gte=0,lte=100"`
}

// UpdateGradeResponse reports how many rows the revision touched
type UpdateGradeResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affected_rows"`
}

// AddTeacherGradeRequest is grade entry on behalf of a teacher; the
// teacher must be assigned to the course.
type AddTeacherGradeRequest struct {
	TeacherID string   `json:"teacher_id" binding:"required"`
	StudentID string   `json:"student_id" binding:"required"`
	CourseID  string   `json:"course_id" binding:"required"`
	Score     *float64 `json:"score" binding:"required,gte=0,lte=100"`
}

// GradeListResponse is one page of grades plus score aggregates
type GradeListResponse struct {
	Grades       []models.Grade `json:"grades"`
	Total        int64          `json:"total"`
	AverageScore float64        `json:"averageScore"`
	PassRate     float64        `json:"passRate"`
}

// TeacherGradeListResponse is one page of grades for courses a teacher
// is assigned to
type TeacherGradeListResponse struct {
	Grades       []models.Grade `json:"grades"`
	Total        int64          `json:"total"`
	AverageScore float64        `json:"averageScore"`
}

// StudentGradesResponse lists one student's grades joined with course
// name and credits
type StudentGradesResponse struct {
	Message string         `json:"message"`
	Grades  []models.Grade `json:"grades"`
}

// GradeMutationResponse echoes the affected grade id
type GradeMutationResponse struct {
	Message string `json:"message"`
	GradeID string `json:"gradeId"`
}
