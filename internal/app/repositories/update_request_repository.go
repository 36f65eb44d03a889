package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// UpdateRequestRepository handles database operations for student
// personal-info update requests
type UpdateRequestRepository struct {
	db *pgxpool.Pool
}

// NewUpdateRequestRepository creates a new update request repository
func NewUpdateRequestRepository(db *pgxpool.Pool) *UpdateRequestRepository {
	return &UpdateRequestRepository{
		db: db,
	}
}

// Create inserts a pending request and fills in the generated id and
// request timestamp
func (r *UpdateRequestRepository) Create(ctx context.Context, req *models.StudentUpdateRequest) error {
	query := `
		INSERT INTO student_update_requests
			(student_id, student_name, date_of_birth, id_card, phone_number, address, status, request_time)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW())
		RETURNING id, status, request_time
	`

	err := r.db.QueryRow(ctx, query,
		req.StudentID, req.StudentName, req.DateOfBirth, req.IDCard, req.PhoneNumber, req.Address).
		Scan(&req.ID, &req.Status, &req.RequestTime)
	if err != nil {
		return fmt.Errorf("error creating update request: %w", err)
	}
	return nil
}

// GetByID fetches a single update request
func (r *UpdateRequestRepository) GetByID(ctx context.Context, id int64) (*models.StudentUpdateRequest, error) {
	query := `
		SELECT id, student_id, student_name, date_of_birth, id_card, phone_number, address,
		       status, request_time, review_time, review_comment
		FROM student_update_requests
		WHERE id = $1
	`

	var req models.StudentUpdateRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.StudentID, &req.StudentName, &req.DateOfBirth, &req.IDCard,
		&req.PhoneNumber, &req.Address, &req.Status, &req.RequestTime,
		&req.ReviewTime, &req.ReviewComment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving update request: %w", err)
	}
	return &req, nil
}

// LatestPendingByStudent returns the most recent pending request of a
// student, or nil when none is pending
func (r *UpdateRequestRepository) LatestPendingByStudent(ctx context.Context, studentID string) (*models.StudentUpdateRequest, error) {
	query := `
		SELECT id, student_id, student_name, date_of_birth, id_card, phone_number, address,
		       status, request_time, review_time, review_comment
		FROM student_update_requests
		WHERE student_id = $1 AND status = 'pending'
		ORDER BY request_time DESC
		LIMIT 1
	`

	var req models.StudentUpdateRequest
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&req.ID, &req.StudentID, &req.StudentName, &req.DateOfBirth, &req.IDCard,
		&req.PhoneNumber, &req.Address, &req.Status, &req.RequestTime,
		&req.ReviewTime, &req.ReviewComment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving pending update request: %w", err)
	}
	return &req, nil
}

// Count returns the total number of update requests
func (r *UpdateRequestRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_update_requests`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting update requests: %w", err)
	}
	return total, nil
}

// StatusCounts returns per-status totals
func (r *UpdateRequestRepository) StatusCounts(ctx context.Context) (pending, approved, rejected int64, err error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END), 0)
		FROM student_update_requests
	`
	if err := r.db.QueryRow(ctx, query).Scan(&pending, &approved, &rejected); err != nil {
		return 0, 0, 0, fmt.Errorf("error computing update request stats: %w", err)
	}
	return pending, approved, rejected, nil
}

// List returns one page of update requests, newest request first
func (r *UpdateRequestRepository) List(ctx context.Context, limit, offset int) ([]models.StudentUpdateRequest, error) {
	query := `
		SELECT id, student_id, student_name, date_of_birth, id_card, phone_number, address,
		       status, request_time, review_time, review_comment
		FROM student_update_requests
		ORDER BY request_time DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.StudentUpdateRequest
	for rows.Next() {
		var req models.StudentUpdateRequest
		if err := rows.Scan(&req.ID, &req.StudentID, &req.StudentName, &req.DateOfBirth,
			&req.IDCard, &req.PhoneNumber, &req.Address, &req.Status, &req.RequestTime,
			&req.ReviewTime, &req.ReviewComment); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Review records the outcome of a request
func (r *UpdateRequestRepository) Review(ctx context.Context, id int64, status string, comment *string) error {
	query := `
		UPDATE student_update_requests
		SET status = $1, review_time = NOW(), review_comment = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, status, comment, id)
	if err != nil {
		return fmt.Errorf("error reviewing update request: %w", err)
	}
	return nil
}
