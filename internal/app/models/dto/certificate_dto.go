package dto

import "github.com/kaiwen/acadhub/internal/app/models"

// UploadCertificateRequest carries a new certificate. Image, supporting
// document and authority are optional; the document type must match the
// stored enum when present.
type UploadCertificateRequest struct {
	CertificateName        string  `json:"certificate_name" binding:"required"`
	CertificateNumber      string  `json:"certificate_number" binding:"required"`
	ImageURL               *string `json:"image_url"`
	SupportingDocumentURL  *string `json:"supporting_document_url"`
	SupportingDocumentType *string `json:"supporting_document_type" binding:"omitempty,oneof=image pdf word other"`
	UploaderName           string  `json:"uploader_name" binding:"required"`
	StudentID              string  `json:"student_id" binding:"required"`
	CertificateAuthority   *string `json:"certificate_authority"`
}

// UploadCertificateResponse returns the generated certificate id
type UploadCertificateResponse struct {
	Message       string `json:"message"`
	CertificateID int64  `json:"certificate_id"`
}

// UpdateCertificateRequest replaces an existing certificate. Unlike the
// upload path, the image URL is required here.
type UpdateCertificateRequest struct {
	CertificateName        string  `json:"certificate_name" binding:"required"`
	CertificateNumber      string  `json:"certificate_number" binding:"required"`
	ImageURL               string  `json:"image_url" binding:"required"`
	SupportingDocumentURL  *string `json:"supporting_document_url"`
	SupportingDocumentType *string `json:"supporting_document_type" binding:"omitempty,oneof=image pdf word other"`
	UploaderName           string  `json:"uploader_name" binding:"required"`
	StudentID              string  `json:"student_id" binding:"required"`
	CertificateAuthority   *string `json:"certificate_authority"`
}

// CertificateMutationResponse echoes the affected certificate id
type CertificateMutationResponse struct {
	Message       string `json:"message"`
	CertificateID string `json:"certificateId"`
}

// CertificateListResponse wraps a list of certificates
type CertificateListResponse struct {
	Message      string               `json:"message"`
	Certificates []models.Certificate `json:"certificates"`
}

// CertificateResponse wraps a single certificate
type CertificateResponse struct {
	Message     string             `json:"message"`
	Certificate models.Certificate `json:"certificate"`
}

// CertificateTypeRequest creates or updates a certificate classification
type CertificateTypeRequest struct {
	TypeName    string `json:"type_name" binding:"required"`
	Description string `json:"description"`
}

// CreateCertificateTypeResponse returns the generated type id
type CreateCertificateTypeResponse struct {
	ID int64 `json:"id"`
}

// AssignCertificateTypeRequest assigns a classification to one certificate
type AssignCertificateTypeRequest struct {
	TypeID int64 `json:"type_id" binding:"required"`
}
