package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a course. A duplicate course_id is reported as
// apperrors.ErrCourseAlreadyExists.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, course_name, credits, class_name, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		course.CourseID, course.CourseName, course.Credits, course.ClassName, course.Description)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID fetches a single course by its business identifier
func (r *CourseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, class_name, description
		FROM courses
		WHERE course_id = $1
	`

	var c models.Course
	err := r.db.QueryRow(ctx, query, courseID).Scan(
		&c.CourseID, &c.CourseName, &c.Credits, &c.ClassName, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &c, nil
}

// Update rewrites the mutable fields of a course. Returns false when no
// row matched.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (bool, error) {
	query := `
		UPDATE courses
		SET course_name = $1, credits = $2, class_name = $3, description = $4, updated_at = NOW()
		WHERE course_id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		course.CourseName, course.Credits, course.ClassName, course.Description, course.CourseID)
	if err != nil {
		return false, fmt.Errorf("error updating course: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a course. Returns false when no row matched.
func (r *CourseRepository) Delete(ctx context.Context, courseID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, courseID)
	if err != nil {
		return false, fmt.Errorf("error deleting course: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count returns the total number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// CreditStats returns the sum and average of course credits
func (r *CourseRepository) CreditStats(ctx context.Context) (totalCredits, averageCredits float64, err error) {
	query := `SELECT COALESCE(SUM(credits), 0), COALESCE(AVG(credits), 0) FROM courses`
	if err := r.db.QueryRow(ctx, query).Scan(&totalCredits, &averageCredits); err != nil {
		return 0, 0, fmt.Errorf("error computing course credit stats: %w", err)
	}
	return totalCredits, averageCredits, nil
}

// List returns one page of courses ordered by course_id
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]models.Course, error) {
	query := `
		SELECT course_id, course_name, credits, class_name, description
		FROM courses
		ORDER BY course_id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.CourseID, &c.CourseName, &c.Credits, &c.ClassName, &c.Description); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
