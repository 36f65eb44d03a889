package models

import "time"

// Grade holds a score for one (student, course) pair. At most one grade
// may exist per pair; the insert workflow guards this and the table
// carries a matching unique constraint.
type Grade struct {
	GradeID   int64     `json:"grade_id" db:"grade_id"`
	StudentID string    `json:"student_id" db:"student_id"`
	CourseID  string    `json:"course_id" db:"course_id"`
	Score     float64   `json:"score" db:"score"`
	GradeTime time.Time `json:"grade_time" db:"grade_time"`

	// Joined columns, populated by listing queries
	StudentName *string  `json:"student_name,omitempty" db:"student_name"`
	CourseName  *string  `json:"course_name,omitempty" db:"course_name"`
	Credits     *float64 `json:"credits,omitempty" db:"credits"`
}
