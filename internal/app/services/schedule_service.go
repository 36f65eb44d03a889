package services

import (
	"context"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// ScheduleService handles class timetable operations
type ScheduleService struct {
	scheduleRepo *repositories.ScheduleRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(scheduleRepo *repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
	}
}

// AddSchedule creates a timetable entry
func (s *ScheduleService) AddSchedule(ctx context.Context, schedule *models.Schedule) error {
	return s.scheduleRepo.Create(ctx, schedule)
}

// UpdateSchedule replaces a timetable entry by id
func (s *ScheduleService) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	updated, err := s.scheduleRepo.Update(ctx, schedule)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// DeleteSchedule removes a timetable entry by id
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	deleted, err := s.scheduleRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// ListSchedules returns one page of schedules with distinct counts
func (s *ScheduleService) ListSchedules(ctx context.Context, page, pageSize int) (*dto.ScheduleListResponse, error) {
	total, err := s.scheduleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalClasses, totalCourses, err := s.scheduleRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.List(ctx, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules:    schedules,
		Total:        total,
		TotalClasses: totalClasses,
		TotalCourses: totalCourses,
	}, nil
}
