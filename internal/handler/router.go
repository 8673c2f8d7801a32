package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, rentalHandler *api.RentalHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, rentalHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, rentalHandler *api.RentalHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Rental operations keep the flat paths existing clients post to.
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/rent", Handler: rentalHandler.Rent},
		{Method: http.MethodPost, Path: "/calculateFinalPrice", Handler: rentalHandler.CalculateFinalPrice},
		{Method: http.MethodPost, Path: "/getAvailableCar", Handler: rentalHandler.GetAvailableCar},
	})

	categories := engine.Group("/carCategories")
	{
		addRoutes(categories, []route{
			{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListCategories},
			{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetCategory},
		})
	}

	customers := engine.Group("/customers")
	{
		addRoutes(customers, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetCustomer},
		})
	}

	engine.NoRoute(helloWorld)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// Unknown routes answer with a greeting instead of 404.
func helloWorld(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": "Hello World!"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
