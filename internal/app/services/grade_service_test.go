package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

type fakeStudentLookup struct {
	students map[string]*models.Student
}

func (f *fakeStudentLookup) GetByID(_ context.Context, studentID string) (*models.Student, error) {
	return f.students[studentID], nil
}

type fakeCourseLookup struct {
	courses map[string]*models.Course
}

func (f *fakeCourseLookup) GetByID(_ context.Context, courseID string) (*models.Course, error) {
	return f.courses[courseID], nil
}

type gradeKey struct {
	studentID string
	courseID  string
}

type fakeGradeStore struct {
	grades    map[gradeKey]*models.Grade
	nextID    int64
	created   []*models.Grade
	createErr error
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{grades: make(map[gradeKey]*models.Grade), nextID: 1}
}

func (f *fakeGradeStore) Exists(_ context.Context, studentID, courseID string) (bool, error) {
	_, ok := f.grades[gradeKey{studentID, courseID}]
	return ok, nil
}

func (f *fakeGradeStore) Create(_ context.Context, grade *models.Grade) error {
	if f.createErr != nil {
		return f.createErr
	}
	grade.GradeID = f.nextID
	grade.GradeTime = time.Now()
	f.nextID++
	f.grades[gradeKey{grade.StudentID, grade.CourseID}] = grade
	f.created = append(f.created, grade)
	return nil
}

func (f *fakeGradeStore) UpdateScore(_ context.Context, studentID, courseID string, score float64) (int64, error) {
	grade, ok := f.grades[gradeKey{studentID, courseID}]
	if !ok {
		return 0, nil
	}
	grade.Score = score
	return 1, nil
}

func (f *fakeGradeStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.grades)), nil
}

func (f *fakeGradeStore) Stats(_ context.Context) (float64, float64, error) {
	if len(f.grades) == 0 {
		return 0, 0, nil
	}
	var sum, passed float64
	for _, g := range f.grades {
		sum += g.Score
		if g.Score >= 60 {
			passed++
		}
	}
	n := float64(len(f.grades))
	return sum / n, passed / n * 100, nil
}

func (f *fakeGradeStore) List(_ context.Context, limit, offset int) ([]models.Grade, error) {
	var out []models.Grade
	for _, g := range f.created {
		out = append(out, *g)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeGradeStore) ListByStudent(_ context.Context, studentID string) ([]models.Grade, error) {
	var out []models.Grade
	for _, g := range f.created {
		if g.StudentID == studentID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGradeStore) Delete(_ context.Context, gradeID int64) (bool, error) {
	for key, g := range f.grades {
		if g.GradeID == gradeID {
			delete(f.grades, key)
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseTeacherCheck struct {
	assignments map[gradeKey]bool // teacherID/courseID pairs
}

func (f *fakeCourseTeacherCheck) IsAssignedToCourse(_ context.Context, teacherID, courseID string) (bool, error) {
	return f.assignments[gradeKey{teacherID, courseID}], nil
}

func newGradeServiceFixture() (*GradeService, *fakeGradeStore) {
	students := &fakeStudentLookup{students: map[string]*models.Student{
		"2021001": {StudentID: "2021001", StudentName: "张三"},
	}}
	courses := &fakeCourseLookup{courses: map[string]*models.Course{
		"C101": {CourseID: "C101", CourseName: "数据结构", Credits: 4},
	}}
	grades := newFakeGradeStore()
	teachers := &fakeCourseTeacherCheck{assignments: map[gradeKey]bool{
		{"T100", "C101"}: true,
	}}
	return NewGradeService(students, courses, grades, teachers), grades
}

func TestAddGrade(t *testing.T) {
	svc, store := newGradeServiceFixture()

	grade, err := svc.AddGrade(context.Background(), "2021001", "C101", 88)
	require.NoError(t, err)
	assert.Equal(t, int64(1), grade.GradeID)
	assert.Equal(t, 88.0, grade.Score)
	assert.Len(t, store.created, 1)
}

func TestAddGradeInsertRaceSurfacesAsDuplicate(t *testing.T) {
	svc, store := newGradeServiceFixture()

	// The existence check passes but a concurrent insert wins the race;
	// the store reports the unique violation as the duplicate sentinel
	store.createErr = apperrors.ErrGradeAlreadyExists

	_, err := svc.AddGrade(context.Background(), "2021001", "C101", 88)
	assert.ErrorIs(t, err, apperrors.ErrGradeAlreadyExists)
	assert.Empty(t, store.created)
}

func TestAddTeacherGradeDuplicatePairSurfacesAsDuplicate(t *testing.T) {
	svc, store := newGradeServiceFixture()
	store.createErr = apperrors.ErrGradeAlreadyExists

	_, err := svc.AddTeacherGrade(context.Background(), "T100", "2021001", "C101", 92)
	assert.ErrorIs(t, err, apperrors.ErrGradeAlreadyExists)
}

func TestAddGradeGuardChain(t *testing.T) {
	svc, store := newGradeServiceFixture()

	_, err := svc.AddGrade(context.Background(), "missing", "C101", 88)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.AddGrade(context.Background(), "2021001", "missing", 88)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	// Guard misses must not create anything
	assert.Empty(t, store.created)

	_, err = svc.AddGrade(context.Background(), "2021001", "C101", 88)
	require.NoError(t, err)

	_, err = svc.AddGrade(context.Background(), "2021001", "C101", 95)
	assert.ErrorIs(t, err, apperrors.ErrGradeAlreadyExists)
	assert.Len(t, store.created, 1)
}

func TestUpdateGrade(t *testing.T) {
	svc, store := newGradeServiceFixture()

	_, err := svc.AddGrade(context.Background(), "2021001", "C101", 55)
	require.NoError(t, err)

	affected, err := svc.UpdateGrade(context.Background(), "2021001", "C101", 72)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, 72.0, store.created[0].Score)
}

func TestUpdateGradeMissingGrade(t *testing.T) {
	svc, _ := newGradeServiceFixture()

	_, err := svc.UpdateGrade(context.Background(), "2021001", "C101", 72)
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)
}

func TestAddTeacherGrade(t *testing.T) {
	svc, store := newGradeServiceFixture()

	grade, err := svc.AddTeacherGrade(context.Background(), "T100", "2021001", "C101", 91)
	require.NoError(t, err)
	assert.Equal(t, 91.0, grade.Score)
	assert.Len(t, store.created, 1)
}

func TestAddTeacherGradeOwnership(t *testing.T) {
	svc, store := newGradeServiceFixture()

	_, err := svc.AddTeacherGrade(context.Background(), "T999", "2021001", "C101", 91)
	assert.ErrorIs(t, err, apperrors.ErrNotCourseTeacher)
	assert.Empty(t, store.created)
}

func TestListGrades(t *testing.T) {
	svc, _ := newGradeServiceFixture()

	_, err := svc.AddGrade(context.Background(), "2021001", "C101", 80)
	require.NoError(t, err)

	resp, err := svc.ListGrades(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 80.0, resp.AverageScore)
	assert.Equal(t, 100.0, resp.PassRate)
	assert.Len(t, resp.Grades, 1)
}

func TestDeleteGrade(t *testing.T) {
	svc, _ := newGradeServiceFixture()

	grade, err := svc.AddGrade(context.Background(), "2021001", "C101", 80)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGrade(context.Background(), grade.GradeID))
	assert.ErrorIs(t, svc.DeleteGrade(context.Background(), grade.GradeID), apperrors.ErrGradeNotFound)
}
