package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// AddScheduleRequest creates a recurring timeslot; every field is required
type AddScheduleRequest struct {
	ClassName  string `json:"class_name" binding:"required"`
	CourseID   string `json:"course_id" binding:"required"`
	CourseName string `json:"course_name" binding:"required"`
	Teacher    string `json:"teacher" binding:"required"`
	Classroom  string `json:"classroom" binding:"required"`
	Weekday    int    `json:"weekday" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
}

// AddScheduleResponse returns the generated schedule id
type AddScheduleResponse struct {
	Message    string `json:"message"`
	ScheduleID int64  `json:"scheduleId"`
}

// ScheduleMutationResponse echoes the affected schedule id
type ScheduleMutationResponse struct {
	Message    string `json:"message"`
	ScheduleID string `json:"scheduleId"`
}

// ScheduleListResponse is one page of schedules plus distinct counts
type ScheduleListResponse struct {
	Schedules    []models.Schedule `json:"schedules"`
	Total        int64             `json:"total"`
	TotalClasses int64             `json:"totalClasses"`
	TotalCourses int64             `json:"totalCourses"`
}

// StudentSchedulesResponse is the per-student timetable derived from the
// student's class
type StudentSchedulesResponse struct {
	Message   string            `json:"message"`
	Schedules []models.Schedule `json:"schedules"`
}
