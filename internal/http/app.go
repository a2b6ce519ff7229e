// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"github.com/suchithrkar/kci-upload-creation-tool/platform/config"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
)

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP server settings.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
