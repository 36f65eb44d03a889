package models

// Credit is a per-student, per-course credit record. The
// (student_id, course_id) pair is unique.
type Credit struct {
	ID         int64   `json:"id" db:"id"`
	StudentID  string  `json:"student_id" db:"student_id"`
	CourseID   string  `json:"course_id" db:"course_id"`
	CourseName string  `json:"course_name" db:"course_name"`
	Credits    float64 `json:"credits" db:"credits"`

	// StudentName is populated by joined listing queries
	StudentName *string `json:"student_name,omitempty" db:"student_name"`
}
