package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// defaultStudentPassword is issued to every new account; students are
// expected to change it on first login
const defaultStudentPassword = "123"

// StudentService handles student account and listing operations
type StudentService struct {
	studentRepo  *repositories.StudentRepository
	scheduleRepo *repositories.ScheduleRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, scheduleRepo *repositories.ScheduleRepository) *StudentService {
	return &StudentService{
		studentRepo:  studentRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Register creates a student account. The student number doubles as the
// login account and the password starts at the default.
func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) error {
	student := &models.Student{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Class:       req.Class,
		Gender:      req.Gender,
		IDCard:      req.IDCard,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Account:     req.StudentID,
		Password:    defaultStudentPassword,
		Major:       req.Major,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		student.DateOfBirth = &dob
	}

	return s.studentRepo.Create(ctx, student)
}

// GetStudent fetches one student by student number
func (s *StudentService) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// DeleteStudent removes a student account
func (s *StudentService) DeleteStudent(ctx context.Context, studentID string) error {
	deleted, err := s.studentRepo.Delete(ctx, studentID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ListStudents returns one page of students with gender counts
func (s *StudentService) ListStudents(ctx context.Context, page, pageSize int) (*dto.StudentListResponse, error) {
	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	male, female, err := s.studentRepo.GenderCounts(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.List(ctx, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Users:       students,
		Total:       total,
		MaleCount:   male,
		FemaleCount: female,
	}, nil
}

// GetStudentSchedules resolves a student's class and returns that
// class's timetable with course descriptions
func (s *StudentService) GetStudentSchedules(ctx context.Context, studentID string) ([]models.Schedule, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return s.scheduleRepo.ListByClass(ctx, student.Class)
}
