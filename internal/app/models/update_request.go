package models

import "time"

// Update request review states.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// StudentUpdateRequest proposes a replacement set of personal fields for
// a student. On approval the proposed fields are copied onto the student
// record; the copy is a separate, best-effort write.
type StudentUpdateRequest struct {
	ID            int64      `json:"id" db:"id"`
	StudentID     string     `json:"student_id" db:"student_id"`
	StudentName   string     `json:"student_name" db:"student_name"`
	DateOfBirth   string     `json:"date_of_birth" db:"date_of_birth"`
	IDCard        string     `json:"id_card" db:"id_card"`
	PhoneNumber   string     `json:"phone_number" db:"phone_number"`
	Address       string     `json:"address" db:"address"`
	Status        string     `json:"status" db:"status"`
	RequestTime   time.Time  `json:"request_time" db:"request_time"`
	ReviewTime    *time.Time `json:"review_time,omitempty" db:"review_time"`
	ReviewComment *string    `json:"review_comment,omitempty" db:"review_comment"`
}
