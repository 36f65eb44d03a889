package models

import "time"

// Supporting document types accepted for a certificate upload.
const (
	DocumentTypeImage = "image"
	DocumentTypePDF   = "pdf"
	DocumentTypeWord  = "word"
	DocumentTypeOther = "other"
)

// Certificate belongs to exactly one student. Image, supporting document
// and authority are optional; TypeID references an explicitly assigned
// classification, independent of the name-derived category.
type Certificate struct {
	ID                     int64      `json:"id" db:"id"`
	CertificateName        string     `json:"certificate_name" db:"certificate_name"`
	CertificateNumber      string     `json:"certificate_number" db:"certificate_number"`
	ImageURL               *string    `json:"image_url" db:"image_url"`
	SupportingDocumentURL  *string    `json:"supporting_document_url" db:"supporting_document_url"`
	SupportingDocumentType *string    `json:"supporting_document_type" db:"supporting_document_type"`
	UploaderName           string     `json:"uploader_name" db:"uploader_name"`
	StudentID              string     `json:"student_id" db:"student_id"`
	CertificateAuthority   *string    `json:"certificate_authority" db:"certificate_authority"`
	TypeID                 *int64     `json:"type_id" db:"type_id"`
	UploadedAt             time.Time  `json:"uploaded_at" db:"uploaded_at"`
}

// CertificateType is a classification certificates may be tagged with.
type CertificateType struct {
	ID          int64     `json:"id" db:"id"`
	TypeName    string    `json:"type_name" db:"type_name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
