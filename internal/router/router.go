package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cardlens/internal/handler"
	"cardlens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	parseH *handler.ParseHandler,
	resultsH *handler.ResultsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	parse := v1.Group("/parse")
	parse.POST("/upload", parseH.Upload)
	parse.POST("/batch", parseH.UploadBatch)
	parse.GET("/status/:id", parseH.Status)
	parse.DELETE("/jobs/:id", parseH.Delete)
	parse.GET("/results/:id", resultsH.GetByJob)

	results := v1.Group("/results")
	results.GET("", resultsH.List)
	results.GET("/export/csv", resultsH.ExportCSV)
	results.GET("/export/xlsx", resultsH.ExportXLSX)

	return r
}
