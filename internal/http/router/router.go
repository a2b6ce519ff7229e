// Package router assembles the Gin engine from the application modules.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	apphttp "github.com/suchithrkar/kci-upload-creation-tool/internal/http"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/httpkit"
)

// New builds the HTTP router: global middleware, the health endpoint, and
// every module's routes under /api/v1.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app)))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx := &apphttp.RouterContext{
		Engine:            engine,
		V1:                engine.Group("/api/v1"),
		UploadRateLimiter: httpkit.NewUploadRateLimiter(app.Logger),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("registered module routes", "module", module.Name())
	}

	return engine
}

func corsConfig(app *apphttp.App) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", httpkit.RequestIDHeader}
	cfg.ExposeHeaders = []string{"Content-Length", "Content-Disposition", httpkit.RequestIDHeader}
	cfg.MaxAge = 12 * time.Hour

	if app.Config.GetCORSAllowAll() {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = app.Config.GetCORSOrigins()
	cfg.AllowCredentials = true
	return cfg
}
