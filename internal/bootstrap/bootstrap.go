// Package bootstrap wires configuration, the DB service client, services,
// controllers and the router into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/gurukulhq/portal-backend/internal/app/controllers"
	appRepos "github.com/gurukulhq/portal-backend/internal/app/repositories"
	appRoutes "github.com/gurukulhq/portal-backend/internal/app/routes"
	appServices "github.com/gurukulhq/portal-backend/internal/app/services"
	"github.com/gurukulhq/portal-backend/internal/config"
	"github.com/gurukulhq/portal-backend/internal/middleware"
	pkgAuth "github.com/gurukulhq/portal-backend/internal/pkg/auth"
	"github.com/gurukulhq/portal-backend/internal/pkg/dbservice"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
	"github.com/gurukulhq/portal-backend/internal/pkg/queue"

	_ "github.com/gurukulhq/portal-backend/docs"
)

// Dependencies holds the application's wired components.
type Dependencies struct {
	Config         *config.Config
	DBClient       *dbservice.Client
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Publisher      *queue.Publisher
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "console",
	})

	logger.Info().
		Str("mode", cfg.Server.Mode).
		Str("db_service", cfg.DBService.BaseURL).
		Msg("configuration loaded")
	return cfg, nil
}

// BuildDependencies constructs every component over the loaded config.
func BuildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	deps.DBClient = dbservice.NewClient(dbservice.Config{
		BaseURL: cfg.DBService.BaseURL,
		Token:   cfg.DBService.Token,
		Timeout: cfg.DBServiceTimeout(),
	})

	deps.Repos = appRepos.NewRepositories(deps.DBClient)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  parseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: parseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		OrgTokenExp:     parseDuration(cfg.JWT.OrgTokenExpiration, 43680*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	publisher, err := queue.NewPublisher(ctx, queue.Config{
		QueueURL:  cfg.SQS.QueueURL,
		Region:    cfg.SQS.Region,
		AccessKey: cfg.SQS.AccessKey,
		SecretKey: cfg.SQS.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize queue publisher: %w", err)
	}
	deps.Publisher = publisher

	deps.Services = appServices.NewServices(deps.Repos, cfg, deps.JWTService, publisher)
	deps.Controllers = appControllers.NewControllers(deps.Services)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "route not found"})
	})

	return router
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
