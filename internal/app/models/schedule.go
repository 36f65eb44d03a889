package models

// Schedule describes a recurring weekly timeslot for a class.
type Schedule struct {
	ID         int64  `json:"id" db:"id"`
	ClassName  string `json:"class_name" db:"class_name"`
	CourseID   string `json:"course_id" db:"course_id"`
	CourseName string `json:"course_name" db:"course_name"`
	Teacher    string `json:"teacher" db:"teacher"`
	Classroom  string `json:"classroom" db:"classroom"`
	Weekday    int    `json:"weekday" db:"weekday"`
	StartTime  string `json:"start_time" db:"start_time"`
	EndTime    string `json:"end_time" db:"end_time"`
	Semester   string `json:"semester" db:"semester"`

	// Description comes from the joined course row in timetable queries
	Description *string `json:"description,omitempty" db:"description"`
}
