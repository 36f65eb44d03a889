package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// AddCreditRequest records credits for one (student, course) pair
type AddCreditRequest struct {
	StudentID  string   `json:"student_id" binding:"required"`
	CourseID   string   `json:"course_id" binding:"required"`
	CourseName string   `json:"course_name" binding:"required"`
	Credits    *float64 `json:"credits" binding:"required,gte=0"`
}

// AddCreditResponse echoes the key of the created record
type AddCreditResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}

// UpdateCreditRequest replaces a credit record by row id
type UpdateCreditRequest struct {
	StudentID  string   `json:"student_id" binding:"required"`
	CourseID   string   `json:"course_id" binding:"required"`
	CourseName string   `json:"course_name" binding:"required"`
	Credits    *float64 `json:"credits" binding:"required,gte=0"`
}

// CreditMutationResponse echoes the affected row id
type CreditMutationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// StudentCreditsResponse lists a student's credit records with the
// total computed over all of them
type StudentCreditsResponse struct {
	StudentID      string          `json:"student_id"`
	CreditsRecords []models.Credit `json:"credits_records"`
	TotalCredits   float64         `json:"total_credits"`
}

// CreditListResponse is one page of credit records plus aggregates
type CreditListResponse struct {
	Credits       []models.Credit `json:"credits"`
	Total         int64           `json:"total"`
	TotalStudents int64           `json:"totalStudents"`
	TotalCourses  int64           `json:"totalCourses"`
	TotalCredits  float64         `json:"totalCredits"`
}
