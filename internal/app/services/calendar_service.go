package services

import (
	"context"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

// CalendarService handles academic calendar operations
type CalendarService struct {
	calendarRepo *repositories.CalendarRepository
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(calendarRepo *repositories.CalendarRepository) *CalendarService {
	return &CalendarService{
		calendarRepo: calendarRepo,
	}
}

// ListEvents returns all calendar events in chronological order
func (s *CalendarService) ListEvents(ctx context.Context) ([]models.AcademicCalendarEvent, error) {
	return s.calendarRepo.List(ctx)
}

// AddEvent creates a calendar event
func (s *CalendarService) AddEvent(ctx context.Context, event *models.AcademicCalendarEvent) error {
	return s.calendarRepo.Create(ctx, event)
}

// UpdateEvent rewrites a calendar event by id
func (s *CalendarService) UpdateEvent(ctx context.Context, event *models.AcademicCalendarEvent) error {
	updated, err := s.calendarRepo.Update(ctx, event)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrCalendarEventNotFound
	}
	return nil
}

// DeleteEvent removes a calendar event by id
func (s *CalendarService) DeleteEvent(ctx context.Context, id int64) error {
	deleted, err := s.calendarRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCalendarEventNotFound
	}
	return nil
}
