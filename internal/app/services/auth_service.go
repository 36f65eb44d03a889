package services

import (
	"context"
	"fmt"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

// Built-in super-admin credentials; not stored in the database
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// StudentCredentialStore is the slice of the student repository the auth
// workflows need
type StudentCredentialStore interface {
	GetByAccountAndPassword(ctx context.Context, account, password string) (*models.Student, error)
	GetByIDAndPassword(ctx context.Context, studentID, password string) (*models.Student, error)
	UpdatePassword(ctx context.Context, studentID, newPassword string) error
}

// TeacherCredentialStore is the slice of the teacher repository the auth
// workflows need
type TeacherCredentialStore interface {
	GetByIDAndPassword(ctx context.Context, teacherID, password string) (*models.Teacher, error)
	UpdatePassword(ctx context.Context, teacherID, newPassword string) error
}

// AuthService handles the login and password-change workflows
type AuthService struct {
	studentStore StudentCredentialStore
	teacherStore TeacherCredentialStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(studentStore StudentCredentialStore, teacherStore TeacherCredentialStore) *AuthService {
	return &AuthService{
		studentStore: studentStore,
		teacherStore: teacherStore,
	}
}

// AdminLogin checks the fixed admin credentials
func (s *AuthService) AdminLogin(username, password string) error {
	if username != adminUsername || password != adminPassword {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// StudentLogin authenticates a student by account and password
func (s *AuthService) StudentLogin(ctx context.Context, account, password string) (*models.Student, error) {
	student, err := s.studentStore.GetByAccountAndPassword(ctx, account, password)
	if err != nil {
		return nil, fmt.Errorf("error during student login: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return student, nil
}

// TeacherLogin authenticates a teacher by staff number and password
func (s *AuthService) TeacherLogin(ctx context.Context, account, password string) (*models.Teacher, error) {
	teacher, err := s.teacherStore.GetByIDAndPassword(ctx, account, password)
	if err != nil {
		return nil, fmt.Errorf("error during teacher login: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return teacher, nil
}

// ChangeStudentPassword verifies the old password before overwriting.
// A verification miss leaves the stored password untouched.
func (s *AuthService) ChangeStudentPassword(ctx context.Context, studentID, oldPassword, newPassword string) error {
	student, err := s.studentStore.GetByIDAndPassword(ctx, studentID, oldPassword)
	if err != nil {
		return fmt.Errorf("error verifying student password: %w", err)
	}
	if student == nil {
		return apperrors.ErrInvalidCredentials
	}
	return s.studentStore.UpdatePassword(ctx, studentID, newPassword)
}

// ChangeTeacherPassword verifies the old password before overwriting
func (s *AuthService) ChangeTeacherPassword(ctx context.Context, teacherID, oldPassword, newPassword string) error {
	teacher, err := s.teacherStore.GetByIDAndPassword(ctx, teacherID, oldPassword)
	if err != nil {
		return fmt.Errorf("error verifying teacher password: %w", err)
	}
	if teacher == nil {
		return apperrors.ErrInvalidCredentials
	}
	return s.teacherStore.UpdatePassword(ctx, teacherID, newPassword)
}
