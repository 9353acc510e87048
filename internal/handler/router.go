package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dreamstay/internal/handler/api"
	"dreamstay/internal/handler/middleware"
	"dreamstay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	searchHandler *api.SearchHandler,
	reservationHandler *api.ReservationHandler,
	pricingHandler *api.PricingHandler,
	frontDeskHandler *api.FrontDeskHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, searchHandler, reservationHandler, pricingHandler, frontDeskHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	searchHandler *api.SearchHandler,
	reservationHandler *api.ReservationHandler,
	pricingHandler *api.PricingHandler,
	frontDeskHandler *api.FrontDeskHandler,
) {
	engine.GET("/", home)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/hotels/search", Handler: searchHandler.SearchHotels},
			{Method: http.MethodPost, Path: "/hotels/search", Handler: searchHandler.SearchHotels},
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.CreateReservation},
			{Method: http.MethodPost, Path: "/reservations/search", Handler: reservationHandler.SearchReservation},
			{Method: http.MethodPost, Path: "/price-preview", Handler: pricingHandler.PricePreview},
			{Method: http.MethodPost, Path: "/checkin", Handler: frontDeskHandler.CheckIn},
			{Method: http.MethodPost, Path: "/checkout", Handler: frontDeskHandler.CheckOut},
			{Method: http.MethodGet, Path: "/estadias", Handler: frontDeskHandler.ListStays},
		})
	}
}

func home(c *gin.Context) {
	c.String(http.StatusOK, "DreamStay Backend - Gin API")
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
