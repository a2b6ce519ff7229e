// Package handler exposes the report HTTP endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/service"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/transport"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/apperr"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/httpkit"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	exportFilename = "repair-cases.xlsx"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler handles HTTP requests for reports.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new reports handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RepairCases derives the repair-case report.
// POST /api/v1/reports/repair-cases
func (h *Handler) RepairCases(c *gin.Context) {
	result, err := h.svc.RepairCases()
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ClosedCases derives the closed-case report. The body is optional; an
// empty body selects the default trailing window.
// POST /api/v1/reports/closed-cases
func (h *Handler) ClosedCases(c *gin.Context) {
	var req transport.ClosedCasesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	result, err := h.svc.ClosedCases(req.Months)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CopyServiceOrders renders the offsite service-order copy list.
// GET /api/v1/reports/copy/service-orders
func (h *Handler) CopyServiceOrders(c *gin.Context) {
	body, err := h.svc.ServiceOrderCopyText()
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Text(c, body)
}

// CopyTrackingURLs renders the tracking-link copy list.
// GET /api/v1/reports/copy/tracking-urls
func (h *Handler) CopyTrackingURLs(c *gin.Context) {
	body, err := h.svc.TrackingURLCopyText()
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Text(c, body)
}

// ExportRepairCases downloads the repair-case report as a workbook.
// GET /api/v1/reports/repair-cases/export
func (h *Handler) ExportRepairCases(c *gin.Context) {
	data, err := h.svc.ExportRepairCases()
	if httpkit.HandleError(c, err) {
		return
	}
	c.Header("Content-Disposition", `attachment; filename=`+exportFilename)
	c.Data(http.StatusOK, xlsxMIME, data)
}
