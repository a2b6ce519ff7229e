// Package ingest provides the upload bounded context module.
package ingest

import (
	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	apphttp "github.com/suchithrkar/kci-upload-creation-tool/internal/http"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/ingest/handler"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/ingest/service"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/config"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
)

// Module is the ingest bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the ingest module.
func NewModule(store *casedata.Store, cfg config.UploadConfig, log *logger.Logger) *Module {
	svc := service.New(store, log)
	h := handler.New(svc, cfg)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "ingest"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts upload routes on the provided router context.
// Every request parses a full workbook, so the group carries the stricter
// upload rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/uploads")
	group.Use(ctx.UploadRateLimiter.RateLimit())

	group.POST("/case-export", m.handler.UploadCaseExport)
	group.POST("/closed-cases", m.handler.UploadClosedCases)
	group.POST("/cso-status", m.handler.UploadCSOStatus)
	group.POST("/delivery-status", m.handler.UploadDeliveryStatus)

	ctx.V1.DELETE("/session", m.handler.ClearSession)
}

var _ apphttp.Module = (*Module)(nil)
