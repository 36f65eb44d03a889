package models

// Course represents a course offered to a class.
type Course struct {
	CourseID    string  `json:"course_id" db:"course_id"`
	CourseName  string  `json:"course_name" db:"course_name"`
	Credits     float64 `json:"credits" db:"credits"`
	ClassName   string  `json:"class_name" db:"class_name"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
}
