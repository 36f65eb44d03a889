package models

// AcademicCalendarEvent is one entry of the academic calendar.
type AcademicCalendarEvent struct {
	ID          int64   `json:"id" db:"id"`
	EventName   string  `json:"event_name" db:"event_name"`
	StartDate   string  `json:"start_date" db:"start_date"`
	EndDate     string  `json:"end_date" db:"end_date"`
	EventType   string  `json:"event_type" db:"event_type"`
	Description *string `json:"description,omitempty" db:"description"`
}
