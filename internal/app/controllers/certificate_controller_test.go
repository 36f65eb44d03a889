package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
)

func TestCertificateFromUpdateRequestCarriesAllFields(t *testing.T) {
	docURL := "https://files.example.cn/doc.pdf"
	docType := models.DocumentTypePDF
	authority := "教育部考试中心"

	req := &dto.UpdateCertificateRequest{
		CertificateName:        "大学英语四级证书",
		CertificateNumber:      "CET4-2024-001",
		ImageURL:               "https://files.example.cn/cert.png",
		SupportingDocumentURL:  &docURL,
		SupportingDocumentType: &docType,
		UploaderName:           "张三",
		StudentID:              "2021001",
		CertificateAuthority:   &authority,
	}

	cert := certificateFromUpdateRequest(42, req)

	assert.Equal(t, int64(42), cert.ID)
	assert.Equal(t, "大学英语四级证书", cert.CertificateName)
	assert.Equal(t, "CET4-2024-001", cert.CertificateNumber)
	require.NotNil(t, cert.ImageURL)
	assert.Equal(t, "https://files.example.cn/cert.png", *cert.ImageURL)
	assert.Equal(t, &docURL, cert.SupportingDocumentURL)
	assert.Equal(t, &docType, cert.SupportingDocumentType)
	assert.Equal(t, "张三", cert.UploaderName)
	assert.Equal(t, "2021001", cert.StudentID)
	assert.Equal(t, &authority, cert.CertificateAuthority)
}

func TestCertificateFromUpdateRequestOptionalFieldsStayNil(t *testing.T) {
	req := &dto.UpdateCertificateRequest{
		CertificateName:   "计算机二级证书",
		CertificateNumber: "NCRE-2024-002",
		ImageURL:          "https://files.example.cn/ncre.png",
		UploaderName:      "李四",
		StudentID:         "2021002",
	}

	cert := certificateFromUpdateRequest(7, req)

	assert.Nil(t, cert.SupportingDocumentURL)
	assert.Nil(t, cert.SupportingDocumentType)
	assert.Nil(t, cert.CertificateAuthority)
}
