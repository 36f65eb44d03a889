package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/dberrors"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Exists reports whether a grade already exists for the pair
func (r *GradeRepository) Exists(ctx context.Context, studentID, courseID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM grades WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking grade existence: %w", err)
	}
	return exists, nil
}

// Create inserts a grade and fills in the generated id and timestamp.
// A concurrent insert for the same pair trips the unique constraint and
// is reported as apperrors.ErrGradeAlreadyExists.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course_id, score, grade_time)
		VALUES ($1, $2, $3, NOW())
		RETURNING grade_id, grade_time
	`

	err := r.db.QueryRow(ctx, query, grade.StudentID, grade.CourseID, grade.Score).
		Scan(&grade.GradeID, &grade.GradeTime)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrGradeAlreadyExists
		}
		return fmt.Errorf("error creating grade: %w", err)
	}
	return nil
}

// UpdateScore overwrites the score for a pair and returns the number of
// rows touched
func (r *GradeRepository) UpdateScore(ctx context.Context, studentID, courseID string, score float64) (int64, error) {
	query := `
		UPDATE grades
		SET score = $1, grade_time = NOW()
		WHERE student_id = $2 AND course_id = $3
	`

	tag, err := r.db.Exec(ctx, query, score, studentID, courseID)
	if err != nil {
		return 0, fmt.Errorf("error updating grade: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the total number of grades
func (r *GradeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM grades`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting grades: %w", err)
	}
	return total, nil
}

// Stats returns the average score and the pass rate. A score of 60 or
// above counts as a pass.
func (r *GradeRepository) Stats(ctx context.Context) (averageScore, passRate float64, err error) {
	query := `
		SELECT COALESCE(AVG(score), 0),
		       COALESCE(AVG(CASE WHEN score >= 60 THEN 1.0 ELSE 0.0 END) * 100, 0)
		FROM grades
	`
	if err := r.db.QueryRow(ctx, query).Scan(&averageScore, &passRate); err != nil {
		return 0, 0, fmt.Errorf("error computing grade stats: %w", err)
	}
	return averageScore, passRate, nil
}

// List returns one page of grades with student and course names joined
// in, newest first
func (r *GradeRepository) List(ctx context.Context, limit, offset int) ([]models.Grade, error) {
	query := `
		SELECT g.grade_id, g.student_id, g.course_id, g.score, g.grade_time,
		       s.student_name AS student_name, c.course_name
		FROM grades g
		LEFT JOIN students s ON g.student_id = s.student_id
		LEFT JOIN courses c ON g.course_id = c.course_id
		ORDER BY g.grade_time DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.GradeID, &g.StudentID, &g.CourseID, &g.Score, &g.GradeTime,
			&g.StudentName, &g.CourseName); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// ListByStudent returns all grades of a student with course details
// joined in
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	query := `
		SELECT g.grade_id, g.student_id, g.course_id, g.score, g.grade_time,
		       c.course_name, c.credits
		FROM grades g
		JOIN courses c ON g.course_id = c.course_id
		WHERE g.student_id = $1
		ORDER BY g.grade_time DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var g models.Grade
		if err := rows.Scan(&g.GradeID, &g.StudentID, &g.CourseID, &g.Score, &g.GradeTime,
			&g.CourseName, &g.Credits); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// Delete removes a grade by id. Returns false when no row matched.
func (r *GradeRepository) Delete(ctx context.Context, gradeID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE grade_id = $1`, gradeID)
	if err != nil {
		return false, fmt.Errorf("error deleting grade: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
