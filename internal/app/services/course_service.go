package services

import (
	"context"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// AddCourse creates a course; a duplicate course id surfaces as
// apperrors.ErrCourseAlreadyExists
func (s *CourseService) AddCourse(ctx context.Context, course *models.Course) error {
	return s.courseRepo.Create(ctx, course)
}

// GetCourse fetches one course by course id
func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// UpdateCourse replaces the mutable fields of a course
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	updated, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes a course
func (s *CourseService) DeleteCourse(ctx context.Context, courseID string) error {
	deleted, err := s.courseRepo.Delete(ctx, courseID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// ListCourses returns one page of courses with credit aggregates
func (s *CourseService) ListCourses(ctx context.Context, page, pageSize int) (*dto.CourseListResponse, error) {
	total, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalCredits, averageCredits, err := s.courseRepo.CreditStats(ctx)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.List(ctx, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.CourseListResponse{
		Courses:        courses,
		Total:          total,
		TotalCredits:   totalCredits,
		AverageCredits: averageCredits,
	}, nil
}
