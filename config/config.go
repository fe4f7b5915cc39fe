package config

import (
	"log"
	"os"

	"github.com/Karthikeyagundu12/Nutrikart/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Log is the process-wide structured logger, set by InitLogger
var Log *zap.Logger

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// JWTSecret signs and verifies all bearer tokens. Resolved lazily so a .env
// file loaded in main is picked up.
func JWTSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "nutrikart_secret_key"))
}

// SpoonacularAPIKey authenticates calls to the nutrition provider
func SpoonacularAPIKey() string {
	return os.Getenv("SPOONACULAR_API_KEY")
}

func InitLogger() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	l, err := cfg.Build()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	Log = l
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "nutrikart.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Restaurant{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	Log.Info("database connected and migrated")
}
