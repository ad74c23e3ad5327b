package api

import (
	"alcyxob/football-training/internal/config"
	"alcyxob/football-training/internal/metrics"
	"alcyxob/football-training/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with the ambient middleware and all routes.
func NewRouter(serverCfg config.ServerConfig, metricsCfg config.MetricsConfig, catalogService service.CatalogService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(recoverWithJSON), CORS())
	if metricsCfg.Enabled {
		router.Use(metrics.Middleware())
		router.GET(metricsCfg.Path, gin.WrapH(promhttp.Handler()))
	}
	router.Use(RequestTimeout(serverCfg.RequestTimeout))

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "Not found")
	})

	SetupRoutes(router, catalogService)
	return router
}

func SetupRoutes(router *gin.Engine, catalogService service.CatalogService) {
	catalogHandler := NewCatalogHandler(catalogService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/", catalogHandler.Root)

		// --- Mesocycle Routes ---
		mesocycleGroup := apiGroup.Group("/mesociclos")
		{
			// GET /api/mesociclos
			mesocycleGroup.GET("", catalogHandler.GetMesocycles)
			// GET /api/mesociclos/{id}
			mesocycleGroup.GET("/:id", catalogHandler.GetMesocycle)
			// GET /api/mesociclos/{id}/detalle
			mesocycleGroup.GET("/:id/detalle", catalogHandler.GetMesocycleDetail)
			// GET /api/mesociclos/{id}/sesiones
			mesocycleGroup.GET("/:id/sesiones", catalogHandler.GetWeeklyTraining)
		}

		// --- Plan Routes ---
		apiGroup.GET("/planificacion", catalogHandler.GetFullPlan)
		apiGroup.POST("/planificacion", catalogHandler.CreateFullPlan)
		apiGroup.GET("/material-basico", catalogHandler.GetBasicMaterial)

		// --- Seeding ---
		apiGroup.POST("/init-data", catalogHandler.InitData)
		apiGroup.GET("/init-data/status", catalogHandler.GetSeedStatus)
	}
}
