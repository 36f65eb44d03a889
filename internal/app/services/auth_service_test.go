package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

type fakeStudentCredentialStore struct {
	students        map[string]*models.Student // keyed by account/id
	updatedPassword map[string]string
	err             error
}

func newFakeStudentCredentialStore(students ...*models.Student) *fakeStudentCredentialStore {
	store := &fakeStudentCredentialStore{
		students:        make(map[string]*models.Student),
		updatedPassword: make(map[string]string),
	}
	for _, s := range students {
		store.students[s.StudentID] = s
	}
	return store
}

func (f *fakeStudentCredentialStore) GetByAccountAndPassword(_ context.Context, account, password string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.students {
		if s.Account == account && s.Password == password {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentCredentialStore) GetByIDAndPassword(_ context.Context, studentID, password string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.students[studentID]; ok && s.Password == password {
		return s, nil
	}
	return nil, nil
}

func (f *fakeStudentCredentialStore) UpdatePassword(_ context.Context, studentID, newPassword string) error {
	f.updatedPassword[studentID] = newPassword
	return nil
}

type fakeTeacherCredentialStore struct {
	teachers        map[string]*models.Teacher
	updatedPassword map[string]string
	passwords       map[string]string
}

func newFakeTeacherCredentialStore() *fakeTeacherCredentialStore {
	return &fakeTeacherCredentialStore{
		teachers:        make(map[string]*models.Teacher),
		updatedPassword: make(map[string]string),
		passwords:       make(map[string]string),
	}
}

func (f *fakeTeacherCredentialStore) add(t *models.Teacher, password string) {
	f.teachers[t.TeacherID] = t
	f.passwords[t.TeacherID] = password
}

func (f *fakeTeacherCredentialStore) GetByIDAndPassword(_ context.Context, teacherID, password string) (*models.Teacher, error) {
	if t, ok := f.teachers[teacherID]; ok && f.passwords[teacherID] == password {
		return t, nil
	}
	return nil, nil
}

func (f *fakeTeacherCredentialStore) UpdatePassword(_ context.Context, teacherID, newPassword string) error {
	f.updatedPassword[teacherID] = newPassword
	return nil
}

func TestAdminLogin(t *testing.T) {
	svc := NewAuthService(newFakeStudentCredentialStore(), newFakeTeacherCredentialStore())

	assert.NoError(t, svc.AdminLogin("admin", "admin123"))
	assert.ErrorIs(t, svc.AdminLogin("admin", "wrong"), apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, svc.AdminLogin("root", "admin123"), apperrors.ErrInvalidCredentials)
}

func TestStudentLogin(t *testing.T) {
	store := newFakeStudentCredentialStore(&models.Student{
		StudentID:   "2021001",
		StudentName: "张三",
		Account:     "2021001",
		Password:    "123",
	})
	svc := NewAuthService(store, newFakeTeacherCredentialStore())

	student, err := svc.StudentLogin(context.Background(), "2021001", "123")
	require.NoError(t, err)
	assert.Equal(t, "张三", student.StudentName)

	_, err = svc.StudentLogin(context.Background(), "2021001", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestStudentLoginStoreFailure(t *testing.T) {
	store := newFakeStudentCredentialStore()
	store.err = errors.New("connection refused")
	svc := NewAuthService(store, newFakeTeacherCredentialStore())

	_, err := svc.StudentLogin(context.Background(), "2021001", "123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestTeacherLogin(t *testing.T) {
	teachers := newFakeTeacherCredentialStore()
	teachers.add(&models.Teacher{TeacherID: "T100", Name: "李老师"}, "secret")
	svc := NewAuthService(newFakeStudentCredentialStore(), teachers)

	teacher, err := svc.TeacherLogin(context.Background(), "T100", "secret")
	require.NoError(t, err)
	assert.Equal(t, "李老师", teacher.Name)

	_, err = svc.TeacherLogin(context.Background(), "T100", "bad")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangeStudentPassword(t *testing.T) {
	store := newFakeStudentCredentialStore(&models.Student{
		StudentID: "2021001",
		Account:   "2021001",
		Password:  "123",
	})
	svc := NewAuthService(store, newFakeTeacherCredentialStore())

	require.NoError(t, svc.ChangeStudentPassword(context.Background(), "2021001", "123", "new-pass"))
	assert.Equal(t, "new-pass", store.updatedPassword["2021001"])
}

func TestChangeStudentPasswordWrongOldPassword(t *testing.T) {
	store := newFakeStudentCredentialStore(&models.Student{
		StudentID: "2021001",
		Account:   "2021001",
		Password:  "123",
	})
	svc := NewAuthService(store, newFakeTeacherCredentialStore())

	err := svc.ChangeStudentPassword(context.Background(), "2021001", "wrong", "new-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	// No partial mutation on a verification miss
	assert.Empty(t, store.updatedPassword)
}

func TestChangeTeacherPassword(t *testing.T) {
	teachers := newFakeTeacherCredentialStore()
	teachers.add(&models.Teacher{TeacherID: "T100"}, "secret")
	svc := NewAuthService(newFakeStudentCredentialStore(), teachers)

	require.NoError(t, svc.ChangeTeacherPassword(context.Background(), "T100", "secret", "stronger"))
	assert.Equal(t, "stronger", teachers.updatedPassword["T100"])

	err := svc.ChangeTeacherPassword(context.Background(), "T100", "nope", "stronger")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
