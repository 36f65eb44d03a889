package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// TeacherRepository handles database operations for teachers and the
// teacher_course relation
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// GetByIDAndPassword verifies teacher credentials. Plaintext comparison,
// matching the stored schema.
func (r *TeacherRepository) GetByIDAndPassword(ctx context.Context, teacherID, password string) (*models.Teacher, error) {
	query := `
		SELECT id, teacher_id, name, email
		FROM teachers
		WHERE teacher_id = $1 AND password = $2
	`

	var t models.Teacher
	err := r.db.QueryRow(ctx, query, teacherID, password).Scan(&t.ID, &t.TeacherID, &t.Name, &t.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error verifying teacher credentials: %w", err)
	}
	return &t, nil
}

// GetProfile returns the public profile fields for a teacher
func (r *TeacherRepository) GetProfile(ctx context.Context, teacherID string) (*models.Teacher, error) {
	query := `
		SELECT id, teacher_id, name, email, created_at, updated_at
		FROM teachers
		WHERE teacher_id = $1
	`

	var t models.Teacher
	err := r.db.QueryRow(ctx, query, teacherID).Scan(&t.ID, &t.TeacherID, &t.Name, &t.Email, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &t, nil
}

// UpdatePassword overwrites the stored password
func (r *TeacherRepository) UpdatePassword(ctx context.Context, teacherID, newPassword string) error {
	_, err := r.db.Exec(ctx, `UPDATE teachers SET password = $1, updated_at = NOW() WHERE teacher_id = $2`, newPassword, teacherID)
	if err != nil {
		return fmt.Errorf("error updating teacher password: %w", err)
	}
	return nil
}

// IsAssignedToCourse reports whether the teacher teaches the course
func (r *TeacherRepository) IsAssignedToCourse(ctx context.Context, teacherID, courseID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teacher_course WHERE teacher_id = $1 AND course_id = $2)`,
		teacherID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher course assignment: %w", err)
	}
	return exists, nil
}

// CountCourses returns the number of courses assigned to a teacher
func (r *TeacherRepository) CountCourses(ctx context.Context, teacherID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM courses c
		JOIN teacher_course tc ON c.course_id = tc.course_id
		WHERE tc.teacher_id = $1
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, teacherID).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting teacher courses: %w", err)
	}
	return total, nil
}

// SumCourseCredits totals the credits of a teacher's assigned courses
func (r *TeacherRepository) SumCourseCredits(ctx context.Context, teacherID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(c.credits), 0)
		FROM courses c
		JOIN teacher_course tc ON c.course_id = tc.course_id
		WHERE tc.teacher_id = $1
	`

	var total float64
	if err := r.db.QueryRow(ctx, query, teacherID).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing teacher course credits: %w", err)
	}
	return total, nil
}

// ListCourses returns one page of a teacher's assigned courses
func (r *TeacherRepository) ListCourses(ctx context.Context, teacherID string, limit, offset int) ([]models.Course, error) {
	query := `
		SELECT c.course_id, c.course_name, c.credits, c.class_name
		FROM courses c
		JOIN teacher_course tc ON c.course_id = tc.course_id
		WHERE tc.teacher_id = $1
		ORDER BY c.course_id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, teacherID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.CourseID, &c.CourseName, &c.Credits, &c.ClassName); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CountGrades returns the number of grades in a teacher's courses
func (r *TeacherRepository) CountGrades(ctx context.Context, teacherID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM grades g
		JOIN teacher_course tc ON g.course_id = tc.course_id
		WHERE tc.teacher_id = $1
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, teacherID).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting teacher grades: %w", err)
	}
	return total, nil
}

// AverageGradeScore returns the mean score across a teacher's courses
func (r *TeacherRepository) AverageGradeScore(ctx context.Context, teacherID string) (float64, error) {
	query := `
		SELECT COALESCE(AVG(g.score), 0)
		FROM grades g
		JOIN teacher_course tc ON g.course_id = tc.course_id
		WHERE tc.teacher_id = $1
	`

	var avg float64
	if err := r.db.QueryRow(ctx, query, teacherID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("error averaging teacher grades: %w", err)
	}
	return avg, nil
}

// ListGrades returns one page of grades in a teacher's courses, newest
// first
func (r *TeacherRepository) ListGrades(ctx context.Context, teacherID string, limit, offset int) ([]models.Grade, error) {
	query := `
		SELECT g.grade_id, g.student_id, g.course_id, g.score, g.grade_time
		FROM grades g
		JOIN teacher_course tc ON g.course_id = tc.course_id
		WHERE tc.teacher_id = $1
		ORDER BY g.grade_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, teacherID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.GradeID, &g.StudentID, &g.CourseID, &g.Score, &g.GradeTime); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}
