package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// CertificateTypeRepository handles database operations for certificate
// types
type CertificateTypeRepository struct {
	db *pgxpool.Pool
}

// NewCertificateTypeRepository creates a new certificate type repository
func NewCertificateTypeRepository(db *pgxpool.Pool) *CertificateTypeRepository {
	return &CertificateTypeRepository{
		db: db,
	}
}

// List returns all certificate types, newest first
func (r *CertificateTypeRepository) List(ctx context.Context) ([]models.CertificateType, error) {
	query := `
		SELECT id, type_name, description, created_at
		FROM certificate_types
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.CertificateType
	for rows.Next() {
		var t models.CertificateType
		if err := rows.Scan(&t.ID, &t.TypeName, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// Create inserts a certificate type and fills in the generated id
func (r *CertificateTypeRepository) Create(ctx context.Context, t *models.CertificateType) error {
	query := `
		INSERT INTO certificate_types (type_name, description, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, t.TypeName, t.Description).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating certificate type: %w", err)
	}
	return nil
}

// Update rewrites a certificate type by id. Returns false when no row
// matched.
func (r *CertificateTypeRepository) Update(ctx context.Context, t *models.CertificateType) (bool, error) {
	query := `UPDATE certificate_types SET type_name = $1, description = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, t.TypeName, t.Description, t.ID)
	if err != nil {
		return false, fmt.Errorf("error updating certificate type: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a certificate type by id. Returns false when no row
// matched.
func (r *CertificateTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM certificate_types WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting certificate type: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a certificate type with the id exists
func (r *CertificateTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM certificate_types WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking certificate type existence: %w", err)
	}
	return exists, nil
}
