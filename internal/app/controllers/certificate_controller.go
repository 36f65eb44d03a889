package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/app/models/dto"
	"github.com/kaiwen/acadhub/internal/app/services"
	"github.com/kaiwen/acadhub/internal/middleware"
)

// CertificateController handles certificate, classification and
// analytics endpoints
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
	}
}

// UploadCertificate stores a new certificate
// @Summary Upload a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Param request body dto.UploadCertificateRequest true "Certificate information"
// @Success 201 {object} dto.UploadCertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /uploadCertificate [post]
func (c *CertificateController) UploadCertificate(ctx *gin.Context) {
	var req dto.UploadCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	cert := &models.Certificate{
		CertificateName:        req.CertificateName,
		CertificateNumber:      req.CertificateNumber,
		ImageURL:               req.ImageURL,
		SupportingDocumentURL:  req.SupportingDocumentURL,
		SupportingDocumentType: req.SupportingDocumentType,
		UploaderName:           req.UploaderName,
		StudentID:              req.StudentID,
		CertificateAuthority:   req.CertificateAuthority,
	}
	if err := c.certificateService.Upload(ctx, cert); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadCertificateResponse{
		Message:       "Certificate uploaded successfully",
		CertificateID: cert.ID,
	})
}

// GetAllCertificates lists every certificate
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Success 200 {object} dto.CertificateListResponse
// @Router /getAllCertificates [get]
func (c *CertificateController) GetAllCertificates(ctx *gin.Context) {
	certificates, err := c.certificateService.ListCertificates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateListResponse{
		Message:      "Certificates retrieved successfully",
		Certificates: certificates,
	})
}

// GetCertificate returns one certificate
// @Summary Get a certificate
// @Tags certificates
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 200 {object} dto.CertificateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /getCertificate/{id} [get]
func (c *CertificateController) GetCertificate(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid Certificate ID"))
		return
	}

	cert, err := c.certificateService.GetCertificate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateResponse{
		Message:     "Certificate retrieved successfully",
		Certificate: *cert,
	})
}

// GetStudentCertificates lists one student's certificates
// @Summary Get a student's certificates
// @Tags certificates
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.CertificateListResponse
// @Router /getStudentCertificates/{id} [get]
func (c *CertificateController) GetStudentCertificates(ctx *gin.Context) {
	certificates, err := c.certificateService.ListStudentCertificates(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateListResponse{
		Message:      "Certificates retrieved successfully",
		Certificates: certificates,
	})
}

// UpdateCertificate replaces an existing certificate
// @Summary Update a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Param id path int true "Certificate ID"
// @Param request body dto.UpdateCertificateRequest true "Certificate information"
// @Success 200 {object} dto.CertificateMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateCertificate/{id} [put]
func (c *CertificateController) UpdateCertificate(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid Certificate ID"))
		return
	}

	var req dto.UpdateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	cert := certificateFromUpdateRequest(id, &req)
	if err := c.certificateService.UpdateCertificate(ctx, cert); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateMutationResponse{
		Message:       "Certificate updated successfully",
		CertificateID: idStr,
	})
}

// DeleteCertificate removes a certificate
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 200 {object} dto.CertificateMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteCertificate/{id} [delete]
func (c *CertificateController) DeleteCertificate(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid Certificate ID"))
		return
	}

	if err := c.certificateService.DeleteCertificate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateMutationResponse{
		Message:       "Certificate deleted successfully",
		CertificateID: idStr,
	})
}

// GetAllCertificateTypes lists classifications as a bare array
// @Summary List certificate types
// @Tags certificate-types
// @Produce json
// @Success 200 {array} models.CertificateType
// @Router /getAllCertificateTypes [get]
func (c *CertificateController) GetAllCertificateTypes(ctx *gin.Context) {
	types, err := c.certificateService.ListCertificateTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// AddCertificateType creates a classification
// @Summary Add a certificate type
// @Tags certificate-types
// @Accept json
// @Produce json
// @Param request body dto.CertificateTypeRequest true "Type information"
// @Success 201 {object} dto.CreateCertificateTypeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /addCertificateType [post]
func (c *CertificateController) AddCertificateType(ctx *gin.Context) {
	var req dto.CertificateTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Type name is required"))
		return
	}

	certType := &models.CertificateType{
		TypeName:    req.TypeName,
		Description: req.Description,
	}
	if err := c.certificateService.AddCertificateType(ctx, certType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateCertificateTypeResponse{ID: certType.ID})
}

// UpdateCertificateType rewrites a classification
// @Summary Update a certificate type
// @Tags certificate-types
// @Accept json
// @Produce json
// @Param id path int true "Type ID"
// @Param request body dto.CertificateTypeRequest true "Type information"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateCertificateType/{id} [put]
func (c *CertificateController) UpdateCertificateType(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid type ID"))
		return
	}

	var req dto.CertificateTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Type name is required"))
		return
	}

	certType := &models.CertificateType{
		ID:          id,
		TypeName:    req.TypeName,
		Description: req.Description,
	}
	if err := c.certificateService.UpdateCertificateType(ctx, certType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Certificate type updated successfully"})
}

// DeleteCertificateType removes a classification
// @Summary Delete a certificate type
// @Tags certificate-types
// @Produce json
// @Param id path int true "Type ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /deleteCertificateType/{id} [delete]
func (c *CertificateController) DeleteCertificateType(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid type ID"))
		return
	}

	if err := c.certificateService.DeleteCertificateType(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Certificate type deleted successfully"})
}

// GetCertificatesByType lists certificates tagged with one type as a
// bare array
// @Summary List certificates by type
// @Tags certificate-types
// @Produce json
// @Param typeId path int true "Type ID"
// @Success 200 {array} models.Certificate
// @Router /getCertificatesByType/{typeId} [get]
func (c *CertificateController) GetCertificatesByType(ctx *gin.Context) {
	typeID, err := strconv.ParseInt(ctx.Param("typeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid type ID"))
		return
	}

	certificates, err := c.certificateService.ListCertificatesByType(ctx, typeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, certificates)
}

// UpdateCertificateTypeAssignment tags a certificate with a type
// @Summary Assign a type to a certificate
// @Tags certificate-types
// @Produce json
// @Param certificateId path int true "Certificate ID"
// @Param typeId path int true "Type ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /updateCertificateTypeAssignment/{certificateId}/{typeId} [put]
func (c *CertificateController) UpdateCertificateTypeAssignment(ctx *gin.Context) {
	certificateID, err := strconv.ParseInt(ctx.Param("certificateId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid Certificate ID"))
		return
	}

	typeID, err := strconv.ParseInt(ctx.Param("typeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid type ID"))
		return
	}

	if err := c.certificateService.AssignCertificateType(ctx, certificateID, typeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Certificate type assigned successfully"})
}

// GetCertificateStatistics returns the statistics and advisory report
// for one student
// @Summary Get certificate statistics
// @Tags certificates
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} dto.ErrorResponse
// @Router /getCertificateStatistics/{id} [get]
func (c *CertificateController) GetCertificateStatistics(ctx *gin.Context) {
	statistics, err := c.certificateService.GetStatistics(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "获取统计信息成功",
		"statistics": statistics,
	})
}

// GetCertificateRecommendations ranks certificates the student could
// pursue next
// @Summary Get certificate recommendations
// @Tags certificates
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} dto.ErrorResponse
// @Router /getCertificateRecommendations/{id} [get]
func (c *CertificateController) GetCertificateRecommendations(ctx *gin.Context) {
	recommendations, err := c.certificateService.GetRecommendations(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":         "Recommendations retrieved successfully",
		"recommendations": recommendations,
	})
}

// certificateFromUpdateRequest carries every bound field into the model;
// the update rewrites all mutable columns
func certificateFromUpdateRequest(id int64, req *dto.UpdateCertificateRequest) *models.Certificate {
	return &models.Certificate{
		ID:                     id,
		CertificateName:        req.CertificateName,
		CertificateNumber:      req.CertificateNumber,
		ImageURL:               &req.ImageURL,
		SupportingDocumentURL:  req.SupportingDocumentURL,
		SupportingDocumentType: req.SupportingDocumentType,
		UploaderName:           req.UploaderName,
		StudentID:              req.StudentID,
		CertificateAuthority:   req.CertificateAuthority,
	}
}
