package routes

import (
	"fmt"
	"net/http"

	"saas-signup-backend/internal/api/handlers"
	"saas-signup-backend/internal/api/middleware"
	"saas-signup-backend/internal/config"
	"saas-signup-backend/internal/repository"
	"saas-signup-backend/internal/service"
	"saas-signup-backend/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize services
	policy, err := service.NewApprovalPolicy(cfg.ApprovalPolicy, userRepo)
	if err != nil {
		return nil, fmt.Errorf("approval policy %q: %w", cfg.ApprovalPolicy, err)
	}
	registrationService := service.NewRegistrationService(txManager, service.NewBcryptHasher(cfg.BcryptCost), validator)
	approvalService := service.NewApprovalService(userRepo, policy)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	userHandler := handlers.NewUserHandler(approvalService)
	uiHandler := handlers.NewUIHandler(approvalService)

	// Service status routes
	router.GET("/", healthHandler.Root)
	router.GET("/db-test", healthHandler.DBTest)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics and API documentation
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Signup and approval queue
	router.POST("/register", registrationHandler.Register)
	users := router.Group("/users")
	{
		users.GET("/pending/:company_id", userHandler.ListPending)
		users.POST("/:id/approve", userHandler.Approve)
	}

	// Server-rendered approval pages
	ui := router.Group("/ui")
	{
		ui.GET("/pending", uiHandler.Pending)
		ui.POST("/approve", uiHandler.Approve)
	}

	// Single-page app
	router.StaticFS("/app", web.App())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message":    "endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
