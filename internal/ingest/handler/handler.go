// Package handler exposes the upload HTTP endpoints.
package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/ingest/service"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/config"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/httpkit"
)

const (
	msgMissingFile  = "missing file field in form data"
	msgFileTooLarge = "file exceeds the maximum upload size"
	msgOpenFailed   = "failed to open uploaded file"
)

// Handler handles HTTP requests for uploads.
type Handler struct {
	svc *service.Service
	cfg config.UploadConfig
}

// New creates a new ingest handler.
func New(svc *service.Service, cfg config.UploadConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// UploadCaseExport ingests a case export workbook.
// POST /api/v1/uploads/case-export
func (h *Handler) UploadCaseExport(c *gin.Context) {
	fh, f, ok := h.formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.svc.IngestCaseExport(fh.Filename, f)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// UploadClosedCases ingests a closed-case table.
// POST /api/v1/uploads/closed-cases
func (h *Handler) UploadClosedCases(c *gin.Context) {
	fh, f, ok := h.formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.svc.IngestClosedCases(fh.Filename, f)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// UploadCSOStatus ingests the offsite status feed.
// POST /api/v1/uploads/cso-status
func (h *Handler) UploadCSOStatus(c *gin.Context) {
	fh, f, ok := h.formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.svc.IngestCSOStatuses(fh.Filename, f)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// UploadDeliveryStatus ingests the delivery status feed.
// POST /api/v1/uploads/delivery-status
func (h *Handler) UploadDeliveryStatus(c *gin.Context) {
	fh, f, ok := h.formFile(c)
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.svc.IngestDeliveries(fh.Filename, f)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ClearSession discards all loaded data sets.
// DELETE /api/v1/session
func (h *Handler) ClearSession(c *gin.Context) {
	h.svc.ClearSession()
	httpkit.OK(c, gin.H{"status": "cleared"})
}

// formFile extracts and opens the "file" form field, enforcing the size
// limit. Writes the error response itself when it returns ok=false.
func (h *Handler) formFile(c *gin.Context) (*multipart.FileHeader, multipart.File, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgMissingFile, nil)
		return nil, nil, false
	}

	if max := h.cfg.GetMaxUploadBytes(); max > 0 && fh.Size > max {
		httpkit.Error(c, http.StatusRequestEntityTooLarge, msgFileTooLarge, gin.H{
			"maxBytes": max,
		})
		return nil, nil, false
	}

	f, err := fh.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgOpenFailed, nil)
		return nil, nil, false
	}
	return fh, f, true
}
