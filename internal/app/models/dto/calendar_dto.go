package dto

// CalendarEventRequest creates or updates an academic calendar event
type CalendarEventRequest struct {
	EventName   string  `json:"event_name" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	EventType   string  `json:"event_type" binding:"required"`
	Description *string `json:"description"`
}

// AddCalendarEventResponse returns the generated event id
type AddCalendarEventResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
