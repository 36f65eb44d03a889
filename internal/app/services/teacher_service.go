package services

import (
	"context"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// TeacherService handles teacher profile and per-teacher listings
type TeacherService struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
	}
}

// GetProfile fetches one teacher's public profile
func (s *TeacherService) GetProfile(ctx context.Context, teacherID string) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetProfile(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}
	return teacher, nil
}

// ListCourses returns one page of a teacher's assigned courses with the
// credit total
func (s *TeacherService) ListCourses(ctx context.Context, teacherID string, page, pageSize int) (*dto.TeacherCourseListResponse, error) {
	total, err := s.teacherRepo.CountCourses(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	totalCredits, err := s.teacherRepo.SumCourseCredits(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	courses, err := s.teacherRepo.ListCourses(ctx, teacherID, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.TeacherCourseListResponse{
		Courses:      courses,
		Total:        total,
		TotalCredits: totalCredits,
	}, nil
}

// ListGrades returns one page of grades in a teacher's courses with the
// average score
func (s *TeacherService) ListGrades(ctx context.Context, teacherID string, page, pageSize int) (*dto.TeacherGradeListResponse, error) {
	total, err := s.teacherRepo.CountGrades(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	averageScore, err := s.teacherRepo.AverageGradeScore(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	grades, err := s.teacherRepo.ListGrades(ctx, teacherID, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.TeacherGradeListResponse{
		Grades:       grades,
		Total:        total,
		AverageScore: averageScore,
	}, nil
}
