package services

import (
	"context"
	"fmt"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// StudentLookup resolves a student by student number
type StudentLookup interface {
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
}

// CourseLookup resolves a course by course id
type CourseLookup interface {
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
}

// GradeStore is the slice of the grade repository the grade workflows
// need
type GradeStore interface {
	Exists(ctx context.Context, studentID, courseID string) (bool, error)
	Create(ctx context.Context, grade *models.Grade) error
	UpdateScore(ctx context.Context, studentID, courseID string, score float64) (int64, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (averageScore, passRate float64, err error)
	List(ctx context.Context, limit, offset int) ([]models.Grade, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Grade, error)
	Delete(ctx context.Context, gradeID int64) (bool, error)
}

// CourseTeacherCheck verifies a teacher's assignment to a course
type CourseTeacherCheck interface {
	IsAssignedToCourse(ctx context.Context, teacherID, courseID string) (bool, error)
}

// GradeService runs the grade entry and revision workflows. Each step of
// the dependent-query chain short-circuits on a miss; no transaction
// spans the chain.
type GradeService struct {
	students StudentLookup
	courses  CourseLookup
	grades   GradeStore
	teachers CourseTeacherCheck
}

// NewGradeService creates a new grade service instance
func NewGradeService(students StudentLookup, courses CourseLookup, grades GradeStore, teachers CourseTeacherCheck) *GradeService {
	return &GradeService{
		students: students,
		courses:  courses,
		grades:   grades,
		teachers: teachers,
	}
}

// AddGrade enters a score after the full guard chain passes: the student
// exists, the course exists and no grade exists for the pair yet.
func (s *GradeService) AddGrade(ctx context.Context, studentID, courseID string, score float64) (*models.Grade, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	exists, err := s.grades.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing grade: %w", err)
	}
	if exists {
		return nil, apperrors.ErrGradeAlreadyExists
	}

	grade := &models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		Score:     score,
	}
	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// UpdateGrade revises an existing score. The chain checks the student,
// the course, then that a grade actually exists for the pair.
func (s *GradeService) UpdateGrade(ctx context.Context, studentID, courseID string, score float64) (int64, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return 0, apperrors.ErrStudentNotFound
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("error checking course: %w", err)
	}
	if course == nil {
		return 0, apperrors.ErrCourseNotFound
	}

	exists, err := s.grades.Exists(ctx, studentID, courseID)
	if err != nil {
		return 0, fmt.Errorf("error checking existing grade: %w", err)
	}
	if !exists {
		return 0, apperrors.ErrGradeNotFound
	}

	return s.grades.UpdateScore(ctx, studentID, courseID, score)
}

// AddTeacherGrade enters a score on behalf of a teacher. The teacher
// must be assigned to the course; student and course existence are not
// re-checked here.
func (s *GradeService) AddTeacherGrade(ctx context.Context, teacherID, studentID, courseID string, score float64) (*models.Grade, error) {
	assigned, err := s.teachers.IsAssignedToCourse(ctx, teacherID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course assignment: %w", err)
	}
	if !assigned {
		return nil, apperrors.ErrNotCourseTeacher
	}

	grade := &models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		Score:     score,
	}
	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// ListGrades returns one page of grades with score aggregates
func (s *GradeService) ListGrades(ctx context.Context, page, pageSize int) (*dto.GradeListResponse, error) {
	total, err := s.grades.Count(ctx)
	if err != nil {
		return nil, err
	}

	averageScore, passRate, err := s.grades.Stats(ctx)
	if err != nil {
		return nil, err
	}

	grades, err := s.grades.List(ctx, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.GradeListResponse{
		Grades:       grades,
		Total:        total,
		AverageScore: averageScore,
		PassRate:     passRate,
	}, nil
}

// GetStudentGrades returns one student's grades with course details
func (s *GradeService) GetStudentGrades(ctx context.Context, studentID string) ([]models.Grade, error) {
	return s.grades.ListByStudent(ctx, studentID)
}

// DeleteGrade removes a grade by id
func (s *GradeService) DeleteGrade(ctx context.Context, gradeID int64) error {
	deleted, err := s.grades.Delete(ctx, gradeID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrGradeNotFound
	}
	return nil
}
