package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/bcn-heatmap-go/internal/config"
	"github.com/jengzang/bcn-heatmap-go/internal/handler"
	"github.com/jengzang/bcn-heatmap-go/internal/middleware"
	"github.com/jengzang/bcn-heatmap-go/internal/repository"
	"github.com/jengzang/bcn-heatmap-go/internal/service"
	"github.com/jengzang/bcn-heatmap-go/internal/spatial"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, source repository.RecordSource) (*gin.Engine, error) {
	offsets, err := spatial.ParseOffsetStrategy(cfg.OffsetStrategy)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFSET_STRATEGY: %w", err)
	}
	seeds, err := service.ParseSeedPolicy(cfg.MockSeed)
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_SEED: %w", err)
	}

	populationService := service.NewPopulationService(source, spatial.NewResolver(offsets), service.NewMockGenerator(), seeds)
	populationHandler := handler.NewPopulationHandler(populationService)
	boundaryHandler := handler.NewBoundaryHandler(service.NewBoundaryService(cfg.BoundariesFile))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Population heatmap API is running",
			"source":  source.Name(),
		})
	})

	setupFrontend(r, cfg)

	// API 路由组
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		api.GET("/population-data", populationHandler.GetPopulationData)
		api.GET("/districts", populationHandler.GetDistricts)
		api.GET("/boundaries/:district", boundaryHandler.GetBoundaries)
	}

	return r, nil
}

// setupFrontend serves the map page and its assets when they are deployed
// next to the binary
func setupFrontend(r *gin.Engine, cfg *config.Config) {
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Static("/static", cfg.StaticDir)
	}

	index := filepath.Join(cfg.TemplateDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		r.GET("/", func(c *gin.Context) {
			c.File(index)
		})
	} else {
		log.Printf("[WARN] No frontend at %s, serving API only", index)
	}
}
