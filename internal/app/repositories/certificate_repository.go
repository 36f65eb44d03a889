package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

const certificateColumns = `id, certificate_name, certificate_number, image_url,
	supporting_document_url, supporting_document_type, uploader_name, student_id,
	certificate_authority, type_id, uploaded_at`

// CertificateRepository handles database operations for certificates
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
	}
}

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	var c models.Certificate
	err := row.Scan(&c.ID, &c.CertificateName, &c.CertificateNumber, &c.ImageURL,
		&c.SupportingDocumentURL, &c.SupportingDocumentType, &c.UploaderName, &c.StudentID,
		&c.CertificateAuthority, &c.TypeID, &c.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a certificate and fills in the generated id and upload
// timestamp
func (r *CertificateRepository) Create(ctx context.Context, c *models.Certificate) error {
	query := `
		INSERT INTO certificates (certificate_name, certificate_number, image_url,
			supporting_document_url, supporting_document_type, uploader_name, student_id,
			certificate_authority, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query,
		c.CertificateName, c.CertificateNumber, c.ImageURL,
		c.SupportingDocumentURL, c.SupportingDocumentType, c.UploaderName, c.StudentID,
		c.CertificateAuthority).Scan(&c.ID, &c.UploadedAt)
	if err != nil {
		return fmt.Errorf("error creating certificate: %w", err)
	}
	return nil
}

// GetByID fetches a single certificate
func (r *CertificateRepository) GetByID(ctx context.Context, id int64) (*models.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificates WHERE id = $1`, certificateColumns)

	cert, err := scanCertificate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("error retrieving certificate: %w", err)
	}
	return cert, nil
}

// List returns all certificates, newest upload first
func (r *CertificateRepository) List(ctx context.Context) ([]models.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificates ORDER BY uploaded_at DESC`, certificateColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCertificates(rows)
}

// ListByStudent returns all certificates of one student, newest upload
// first
func (r *CertificateRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificates WHERE student_id = $1 ORDER BY uploaded_at DESC`, certificateColumns)

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCertificates(rows)
}

// ListByType returns all certificates tagged with one type, newest
// upload first
func (r *CertificateRepository) ListByType(ctx context.Context, typeID int64) ([]models.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificates WHERE type_id = $1 ORDER BY uploaded_at DESC`, certificateColumns)

	rows, err := r.db.Query(ctx, query, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCertificates(rows)
}

// Update rewrites the mutable fields of a certificate. Returns false
// when no row matched.
func (r *CertificateRepository) Update(ctx context.Context, c *models.Certificate) (bool, error) {
	query := `
		UPDATE certificates
		SET certificate_name = $1, certificate_number = $2, image_url = $3,
		    supporting_document_url = $4, supporting_document_type = $5,
		    uploader_name = $6, student_id = $7, certificate_authority = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		c.CertificateName, c.CertificateNumber, c.ImageURL,
		c.SupportingDocumentURL, c.SupportingDocumentType,
		c.UploaderName, c.StudentID, c.CertificateAuthority, c.ID)
	if err != nil {
		return false, fmt.Errorf("error updating certificate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AssignType tags a certificate with a type. Returns false when no row
// matched.
func (r *CertificateRepository) AssignType(ctx context.Context, certificateID, typeID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE certificates SET type_id = $1 WHERE id = $2`, typeID, certificateID)
	if err != nil {
		return false, fmt.Errorf("error assigning certificate type: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a certificate by id. Returns false when no row matched.
func (r *CertificateRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting certificate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func collectCertificates(rows pgx.Rows) ([]models.Certificate, error) {
	var certs []models.Certificate
	for rows.Next() {
		var c models.Certificate
		if err := rows.Scan(&c.ID, &c.CertificateName, &c.CertificateNumber, &c.ImageURL,
			&c.SupportingDocumentURL, &c.SupportingDocumentType, &c.UploaderName, &c.StudentID,
			&c.CertificateAuthority, &c.TypeID, &c.UploadedAt); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certs, nil
}
