package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/dberrors"
)

// CreditRepository handles database operations for credit records
type CreditRepository struct {
	db *pgxpool.Pool
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *pgxpool.Pool) *CreditRepository {
	return &CreditRepository{
		db: db,
	}
}

// Create inserts a credit record. A duplicate (student, course) pair is
// reported as apperrors.ErrCreditAlreadyExists and a missing student or
// course as apperrors.ErrInvalidCreditRef.
func (r *CreditRepository) Create(ctx context.Context, credit *models.Credit) error {
	query := `
		INSERT INTO credits (student_id, course_id, course_name, credits)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		credit.StudentID, credit.CourseID, credit.CourseName, credit.Credits)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCreditAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidCreditRef
		}
		return fmt.Errorf("error creating credit record: %w", err)
	}
	return nil
}

// ListByStudent returns all credit records for one student
func (r *CreditRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Credit, error) {
	query := `
		SELECT id, student_id, course_id, course_name, credits
		FROM credits
		WHERE student_id = $1
		ORDER BY course_id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []models.Credit
	for rows.Next() {
		var c models.Credit
		if err := rows.Scan(&c.ID, &c.StudentID, &c.CourseID, &c.CourseName, &c.Credits); err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return credits, nil
}

// Count returns the total number of credit records
func (r *CreditRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM credits`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting credit records: %w", err)
	}
	return total, nil
}

// Stats returns distinct student and course counts plus the credit sum
func (r *CreditRepository) Stats(ctx context.Context) (totalStudents, totalCourses int64, totalCredits float64, err error) {
	query := `
		SELECT COUNT(DISTINCT student_id), COUNT(DISTINCT course_id), COALESCE(SUM(credits), 0)
		FROM credits
	`
	if err := r.db.QueryRow(ctx, query).Scan(&totalStudents, &totalCourses, &totalCredits); err != nil {
		return 0, 0, 0, fmt.Errorf("error computing credit stats: %w", err)
	}
	return totalStudents, totalCourses, totalCredits, nil
}

// List returns one page of credit records with the student name joined
// in
func (r *CreditRepository) List(ctx context.Context, limit, offset int) ([]models.Credit, error) {
	query := `
		SELECT cr.id, cr.student_id, cr.course_id, cr.course_name, cr.credits, s.student_name AS student_name
		FROM credits cr
		LEFT JOIN students s ON cr.student_id = s.student_id
		ORDER BY cr.student_id, cr.course_id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []models.Credit
	for rows.Next() {
		var c models.Credit
		if err := rows.Scan(&c.ID, &c.StudentID, &c.CourseID, &c.CourseName, &c.Credits, &c.StudentName); err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return credits, nil
}

// Update rewrites a credit record by id. Returns false when no row
// matched.
func (r *CreditRepository) Update(ctx context.Context, credit *models.Credit) (bool, error) {
	query := `
		UPDATE credits
		SET student_id = $1, course_id = $2, course_name = $3, credits = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		credit.StudentID, credit.CourseID, credit.CourseName, credit.Credits, credit.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return false, apperrors.ErrCreditAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrInvalidCreditRef
		}
		return false, fmt.Errorf("error updating credit record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a credit record by id. Returns false when no row
// matched.
func (r *CreditRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM credits WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting credit record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
