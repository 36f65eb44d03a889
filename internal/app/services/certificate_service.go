package services

import (
	"context"
	"fmt"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/repositories"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

// CertificateService handles certificate records, their classifications
// and the derived statistics and recommendations
type CertificateService struct {
	certificateRepo *repositories.CertificateRepository
	typeRepo        *repositories.CertificateTypeRepository
	studentRepo     *repositories.StudentRepository
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(
	certificateRepo *repositories.CertificateRepository,
	typeRepo *repositories.CertificateTypeRepository,
	studentRepo *repositories.StudentRepository,
) *CertificateService {
	return &CertificateService{
		certificateRepo: certificateRepo,
		typeRepo:        typeRepo,
		studentRepo:     studentRepo,
	}
}

// Upload stores a new certificate
func (s *CertificateService) Upload(ctx context.Context, cert *models.Certificate) error {
	return s.certificateRepo.Create(ctx, cert)
}

// GetCertificate fetches one certificate by id
func (s *CertificateService) GetCertificate(ctx context.Context, id int64) (*models.Certificate, error) {
	cert, err := s.certificateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, apperrors.ErrCertificateNotFound
	}
	return cert, nil
}

// ListCertificates returns every certificate, newest upload first
func (s *CertificateService) ListCertificates(ctx context.Context) ([]models.Certificate, error) {
	return s.certificateRepo.List(ctx)
}

// ListStudentCertificates returns one student's certificates
func (s *CertificateService) ListStudentCertificates(ctx context.Context, studentID string) ([]models.Certificate, error) {
	return s.certificateRepo.ListByStudent(ctx, studentID)
}

// UpdateCertificate replaces the mutable fields of a certificate
func (s *CertificateService) UpdateCertificate(ctx context.Context, cert *models.Certificate) error {
	updated, err := s.certificateRepo.Update(ctx, cert)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrCertificateNotFound
	}
	return nil
}

// DeleteCertificate removes a certificate
func (s *CertificateService) DeleteCertificate(ctx context.Context, id int64) error {
	deleted, err := s.certificateRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCertificateNotFound
	}
	return nil
}

// ListCertificateTypes returns all classifications, newest first
func (s *CertificateService) ListCertificateTypes(ctx context.Context) ([]models.CertificateType, error) {
	return s.typeRepo.List(ctx)
}

// AddCertificateType creates a classification
func (s *CertificateService) AddCertificateType(ctx context.Context, t *models.CertificateType) error {
	return s.typeRepo.Create(ctx, t)
}

// UpdateCertificateType rewrites a classification
func (s *CertificateService) UpdateCertificateType(ctx context.Context, t *models.CertificateType) error {
	updated, err := s.typeRepo.Update(ctx, t)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrCertificateTypeNotFound
	}
	return nil
}

// DeleteCertificateType removes a classification
func (s *CertificateService) DeleteCertificateType(ctx context.Context, id int64) error {
	deleted, err := s.typeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCertificateTypeNotFound
	}
	return nil
}

// ListCertificatesByType returns all certificates tagged with one
// classification
func (s *CertificateService) ListCertificatesByType(ctx context.Context, typeID int64) ([]models.Certificate, error) {
	return s.certificateRepo.ListByType(ctx, typeID)
}

// AssignCertificateType tags a certificate with a classification. Both
// sides must exist.
func (s *CertificateService) AssignCertificateType(ctx context.Context, certificateID, typeID int64) error {
	exists, err := s.typeRepo.Exists(ctx, typeID)
	if err != nil {
		return fmt.Errorf("error checking certificate type: %w", err)
	}
	if !exists {
		return apperrors.ErrCertificateTypeNotFound
	}

	assigned, err := s.certificateRepo.AssignType(ctx, certificateID, typeID)
	if err != nil {
		return err
	}
	if !assigned {
		return apperrors.ErrCertificateNotFound
	}
	return nil
}

// GetStatistics aggregates one student's certificates and attaches the
// advisory report
func (s *CertificateService) GetStatistics(ctx context.Context, studentID string) (*CertificateStatistics, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	certificates, err := s.certificateRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return BuildStatistics(student, certificates), nil
}

// GetRecommendations ranks certificates the student could pursue next
func (s *CertificateService) GetRecommendations(ctx context.Context, studentID string) ([]Recommendation, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	certificates, err := s.certificateRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return GenerateRecommendations(student, certificates), nil
}
