package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// RegisterStudentRequest creates a student account. The student number
// becomes the login account and the password starts at the default.
type RegisterStudentRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	StudentName string `json:"student_name" binding:"required"`
	Class       string `json:"class"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	IDCard      string `json:"id_card"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Major       string `json:"major"`
}

// RegisterStudentResponse echoes the new student id
type RegisterStudentResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
}

// StudentListResponse is one page of students plus gender counts
type StudentListResponse struct {
	Users       []models.Student `json:"users"`
	Total       int64            `json:"total"`
	MaleCount   int64            `json:"maleCount"`
	FemaleCount int64            `json:"femaleCount"`
}
