// Package reports provides the report derivation bounded context module.
package reports

import (
	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	apphttp "github.com/suchithrkar/kci-upload-creation-tool/internal/http"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/handler"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/service"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/config"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/validator"
)

// Module is the reports bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the reports module.
func NewModule(store *casedata.Store, r rules.Rules, cfg config.ReportConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, r, cfg.GetClosedCaseWindowMonths(), log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "reports"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts report routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/reports")

	group.POST("/repair-cases", m.handler.RepairCases)
	group.GET("/repair-cases/export", m.handler.ExportRepairCases)
	group.POST("/closed-cases", m.handler.ClosedCases)
	group.GET("/copy/service-orders", m.handler.CopyServiceOrders)
	group.GET("/copy/tracking-urls", m.handler.CopyTrackingURLs)
}

var _ apphttp.Module = (*Module)(nil)
