package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	apphttp "github.com/suchithrkar/kci-upload-creation-tool/internal/http"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/http/router"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/ingest"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/config"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Business rules are optional; a missing file means empty rules and
	// every lookup resolves to the sentinel.
	businessRules, err := rules.Load(cfg.RulesPath)
	if err != nil {
		log.Warn("failed to load business rules, continuing without them", "path", cfg.RulesPath, "error", err)
		businessRules = rules.Rules{}
	} else {
		log.Info("business rules loaded",
			"path", cfg.RulesPath,
			"teamLeads", len(businessRules.TeamLeads),
			"markets", len(businessRules.Markets),
		)
	}

	// Session store shared by the ingest and reports modules
	store := casedata.NewStore()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	ingestModule := ingest.NewModule(store, cfg, log)
	reportsModule := reports.NewModule(store, businessRules, cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			ingestModule,
			reportsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
