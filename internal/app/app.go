package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/paambaati/sqlary/internal/auth"
	"github.com/paambaati/sqlary/internal/config"
	"github.com/paambaati/sqlary/internal/middleware"
	"github.com/paambaati/sqlary/internal/salary"
	"github.com/paambaati/sqlary/internal/shared/connection"
	"github.com/paambaati/sqlary/migrations"
)

// BuildApp connects the infrastructure, runs migrations and registers every
// module's routes on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	db, err := connection.ConnectGORMWithRetry(cfg.DBPath(), 5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established", zap.String("path", cfg.DBPath()))

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := migrations.Migrate(sqlDB); err != nil {
		return err
	}
	zap.L().Info("database migrations applied")

	registerModules(router, db, cfg)

	return nil
}

func registerModules(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	// --- Repositories ---
	authRepo := auth.NewRepository(auth.Credentials{
		Passwords: cfg.AuthUsers,
		APIKeys:   cfg.AuthAPIKeys,
	})
	salaryRepo := salary.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	salaryService := salary.NewService(salaryRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	root := router.Group("")
	root.Use(middleware.RequestID())
	{
		auth.RegisterRoutes(root, authHandler, authRepo)
		salary.RegisterRoutes(root, salaryHandler, authRepo)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
