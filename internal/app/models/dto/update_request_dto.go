package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// SubmitUpdateRequestRequest proposes replacement personal fields for a
// student; every field is required
type SubmitUpdateRequestRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	StudentName string `json:"student_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	IDCard      string `json:"id_card" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// SubmitUpdateRequestResponse returns the generated request id
type SubmitUpdateRequestResponse struct {
	Message   string `json:"message"`
	RequestID int64  `json:"request_id"`
}

// ReviewUpdateRequestRequest resolves a pending request; status is
// restricted to the two terminal states
type ReviewUpdateRequestRequest struct {
	RequestID     int64  `json:"request_id" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=approved rejected"`
	ReviewComment string `json:"review_comment" binding:"required"`
}

// ReviewUpdateRequestResponse confirms the review
type ReviewUpdateRequestResponse struct {
	Message   string `json:"message"`
	RequestID int64  `json:"request_id"`
}

// UpdateRequestListResponse is one page of update requests plus
// per-status counts
type UpdateRequestListResponse struct {
	Requests      []models.StudentUpdateRequest `json:"requests"`
	Total         int64                         `json:"total"`
	PendingCount  int64                         `json:"pendingCount"`
	ApprovedCount int64                         `json:"approvedCount"`
	RejectedCount int64                         `json:"rejectedCount"`
}
