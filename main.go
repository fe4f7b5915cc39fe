package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/Karthikeyagundu12/Nutrikart/config"
	"github.com/Karthikeyagundu12/Nutrikart/handlers"
	"github.com/Karthikeyagundu12/Nutrikart/middleware"
	"github.com/Karthikeyagundu12/Nutrikart/nutrition"
	"github.com/Karthikeyagundu12/Nutrikart/routes"
	"github.com/Karthikeyagundu12/Nutrikart/seed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	seedFlag := flag.Bool("seed", false, "seed demo data and continue serving")
	flag.Parse()

	// Best-effort .env load; production sets env vars directly
	_ = godotenv.Load()

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	config.InitLogger()
	defer config.Log.Sync()

	config.InitDB()

	if *seedFlag {
		if err := seed.Run(config.DB); err != nil {
			config.Log.Fatal("failed to seed demo data", zap.Error(err))
		}
		config.Log.Info("demo data seeded")
	}

	// Wire the nutrition cache gate to the external provider
	handlers.InitNutrition(nutrition.NewGate(config.DB, nutrition.NewClient(config.SpoonacularAPIKey())))

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.Metrics())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "NutriKart API",
			"version": "1.0.0",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the NutriKart API",
			"health":  "/health",
			"metrics": "/metrics",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Log.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal("failed to start server", zap.Error(err))
	}
}
