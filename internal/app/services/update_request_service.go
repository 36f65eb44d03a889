package services

import (
	"context"
	"fmt"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
	"github.com/kaiwen/acadhub/internal/pkg/logger"
)

// UpdateRequestStore is the slice of the update-request repository the
// review workflow needs
type UpdateRequestStore interface {
	Create(ctx context.Context, req *models.StudentUpdateRequest) error
	GetByID(ctx context.Context, id int64) (*models.StudentUpdateRequest, error)
	LatestPendingByStudent(ctx context.Context, studentID string) (*models.StudentUpdateRequest, error)
	Count(ctx context.Context) (int64, error)
	StatusCounts(ctx context.Context) (pending, approved, rejected int64, err error)
	List(ctx context.Context, limit, offset int) ([]models.StudentUpdateRequest, error)
	Review(ctx context.Context, id int64, status string, comment *string) error
}

// StudentInfoWriter copies approved fields onto the student record
type StudentInfoWriter interface {
	UpdatePersonalInfo(ctx context.Context, req *models.StudentUpdateRequest) error
}

// UpdateRequestService runs the personal-info update-request workflow
type UpdateRequestService struct {
	requests UpdateRequestStore
	students StudentInfoWriter
}

// NewUpdateRequestService creates a new update request service instance
func NewUpdateRequestService(requests UpdateRequestStore, students StudentInfoWriter) *UpdateRequestService {
	return &UpdateRequestService{
		requests: requests,
		students: students,
	}
}

// Submit records a new pending request
func (s *UpdateRequestService) Submit(ctx context.Context, req *models.StudentUpdateRequest) error {
	return s.requests.Create(ctx, req)
}

// GetPending returns the latest pending request of a student, or nil
// when none is pending
func (s *UpdateRequestService) GetPending(ctx context.Context, studentID string) (*models.StudentUpdateRequest, error) {
	return s.requests.LatestPendingByStudent(ctx, studentID)
}

// List returns one page of requests with per-status counts
func (s *UpdateRequestService) List(ctx context.Context, page, pageSize int) (*dto.UpdateRequestListResponse, error) {
	total, err := s.requests.Count(ctx)
	if err != nil {
		return nil, err
	}

	pending, approved, rejected, err := s.requests.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.requests.List(ctx, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.UpdateRequestListResponse{
		Requests:      requests,
		Total:         total,
		PendingCount:  pending,
		ApprovedCount: approved,
		RejectedCount: rejected,
	}, nil
}

// Review resolves a pending request. On approval the proposed fields are
// copied onto the student record as a second, best-effort write: a
// failure there is logged and does not change the outcome.
func (s *UpdateRequestService) Review(ctx context.Context, requestID int64, status string, comment *string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("error retrieving update request: %w", err)
	}
	if request == nil {
		return apperrors.ErrUpdateRequestNotFound
	}

	if err := s.requests.Review(ctx, requestID, status, comment); err != nil {
		return err
	}

	if status == models.RequestStatusApproved {
		if err := s.students.UpdatePersonalInfo(ctx, request); err != nil {
			logger.Error().
				Err(err).
				Int64("request_id", requestID).
				Str("student_id", request.StudentID).
				Msg("Approved update request could not be applied to the student record")
		}
	}

	return nil
}
