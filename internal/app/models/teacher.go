package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID        int64     `json:"id" db:"id"`
	TeacherID string    `json:"teacher_id" db:"teacher_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TeacherCourse links a teacher to a course they teach
type TeacherCourse struct {
	TeacherID string `json:"teacher_id" db:"teacher_id"`
	CourseID  string `json:"course_id" db:"course_id"`
}
