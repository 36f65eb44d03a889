package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `student_id, student_name, class, gender, date_of_birth, id_card, phone_number, address, account, password, major`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.StudentID,
		&s.StudentName,
		&s.Class,
		&s.Gender,
		&s.DateOfBirth,
		&s.IDCard,
		&s.PhoneNumber,
		&s.Address,
		&s.Account,
		&s.Password,
		&s.Major,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return &s, nil
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		student.StudentID,
		student.StudentName,
		student.Class,
		student.Gender,
		student.DateOfBirth,
		student.IDCard,
		student.PhoneNumber,
		student.Address,
		student.Account,
		student.Password,
		student.Major,
	)
	return err
}

// GetByID retrieves a student by student number. Returns (nil, nil) when
// no such student exists.
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1`
	return scanStudent(r.db.QueryRow(ctx, query, studentID))
}

// GetByAccountAndPassword looks a student up by login credentials.
// Plaintext comparison against the stored password column.
func (r *StudentRepository) GetByAccountAndPassword(ctx context.Context, account, password string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE account = $1 AND password = $2`
	return scanStudent(r.db.QueryRow(ctx, query, account, password))
}

// GetByIDAndPassword verifies a student's current password
func (r *StudentRepository) GetByIDAndPassword(ctx context.Context, studentID, password string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1 AND password = $2`
	return scanStudent(r.db.QueryRow(ctx, query, studentID, password))
}

// UpdatePassword overwrites the stored password
func (r *StudentRepository) UpdatePassword(ctx context.Context, studentID, newPassword string) error {
	_, err := r.db.Exec(ctx, `UPDATE students SET password = $1 WHERE student_id = $2`, newPassword, studentID)
	if err != nil {
		return fmt.Errorf("error updating student password: %w", err)
	}
	return nil
}

// UpdatePersonalInfo copies approved update-request fields onto the
// student row
func (r *StudentRepository) UpdatePersonalInfo(ctx context.Context, req *models.StudentUpdateRequest) error {
	query := `
		UPDATE students
		SET student_name = $1, date_of_birth = $2::date, id_card = $3, phone_number = $4, address = $5
		WHERE student_id = $6
	`

	_, err := r.db.Exec(ctx, query,
		req.StudentName,
		req.DateOfBirth,
		req.IDCard,
		req.PhoneNumber,
		req.Address,
		req.StudentID,
	)
	if err != nil {
		return fmt.Errorf("error updating student info: %w", err)
	}
	return nil
}

// Delete removes a student by id; reports whether a row was removed
func (r *StudentRepository) Delete(ctx context.Context, studentID string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}

// GenderCounts returns how many students are recorded as male/female.
// The gender column stores the Chinese literals.
func (r *StudentRepository) GenderCounts(ctx context.Context) (male, female int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN gender = '男' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN gender = '女' THEN 1 ELSE 0 END), 0)
		FROM students
	`

	if err := r.db.QueryRow(ctx, query).Scan(&male, &female); err != nil {
		return 0, 0, fmt.Errorf("error counting students by gender: %w", err)
	}
	return male, female, nil
}

// List returns one page of students ordered by student number
func (r *StudentRepository) List(ctx context.Context, limit, offset int) ([]models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY student_id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.StudentID,
			&s.StudentName,
			&s.Class,
			&s.Gender,
			&s.DateOfBirth,
			&s.IDCard,
			&s.PhoneNumber,
			&s.Address,
			&s.Account,
			&s.Password,
			&s.Major,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
