package middleware

import (
	"log/slog"
	"slices"

	"car-rental/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the rental endpoints. An empty
// origin list or a "*" entry opens the API to any origin; credentials are then
// never allowed.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}

	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}

	slog.Debug("CORS middleware initialized",
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"allow_origins", corsCfg.AllowOrigins,
		"allow_methods", cfg.AllowMethods)
	return cors.New(corsCfg)
}
