package services

import (
	"context"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
	"github.com/kaiwen/acadhub/internal/pkg/helpers"
)

// CreditService handles credit record operations
type CreditService struct {
	creditRepo *repositories.CreditRepository
}

// NewCreditService creates a new credit service instance
func NewCreditService(creditRepo *repositories.CreditRepository) *CreditService {
	return &CreditService{
		creditRepo: creditRepo,
	}
}

// AddCredit records credits for a (student, course) pair. The database
// constraints surface a duplicate pair or a dangling reference as the
// matching sentinel error.
func (s *CreditService) AddCredit(ctx context.Context, credit *models.Credit) error {
	return s.creditRepo.Create(ctx, credit)
}

// GetStudentCredits lists one student's credit records with the total
// computed over all of them. An empty set is a miss.
func (s *CreditService) GetStudentCredits(ctx context.Context, studentID string) (*dto.StudentCreditsResponse, error) {
	credits, err := s.creditRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(credits) == 0 {
		return nil, apperrors.ErrNoCreditsForStudent
	}

	var total float64
	for _, c := range credits {
		total += c.Credits
	}

	return &dto.StudentCreditsResponse{
		StudentID:      studentID,
		CreditsRecords: credits,
		TotalCredits:   total,
	}, nil
}

// ListCredits returns one page of credit records with aggregates
func (s *CreditService) ListCredits(ctx context.Context, page, pageSize int) (*dto.CreditListResponse, error) {
	total, err := s.creditRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalStudents, totalCourses, totalCredits, err := s.creditRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	credits, err := s.creditRepo.List(ctx, pageSize, helpers.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.CreditListResponse{
		Credits:       credits,
		Total:         total,
		TotalStudents: totalStudents,
		TotalCourses:  totalCourses,
		TotalCredits:  totalCredits,
	}, nil
}

// UpdateCredit replaces a credit record by row id
func (s *CreditService) UpdateCredit(ctx context.Context, credit *models.Credit) error {
	updated, err := s.creditRepo.Update(ctx, credit)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrCreditNotFound
	}
	return nil
}

// DeleteCredit removes a credit record by row id
func (s *CreditService) DeleteCredit(ctx context.Context, id int64) error {
	deleted, err := s.creditRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCreditNotFound
	}
	return nil
}
