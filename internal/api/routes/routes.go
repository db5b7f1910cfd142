package routes

import (
	"brokerage-backoffice/internal/api/handlers"
	"brokerage-backoffice/internal/api/middleware"
	"brokerage-backoffice/internal/auth"
	"brokerage-backoffice/internal/config"
	"brokerage-backoffice/internal/repository"
	"brokerage-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	agentRepo := repository.NewAgentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	revenueShareRepo := repository.NewRevenueShareRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	webhookSettingRepo := repository.NewWebhookSettingRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditLogRepo)
	webhookDispatcher := service.NewWebhookDispatcher(webhookSettingRepo, cfg)
	revenueShareEngine := service.NewRevenueShareEngine(agentRepo, revenueShareRepo)
	agentService := service.NewAgentService(db, agentRepo, auditService, validate)
	transactionService := service.NewTransactionService(db, transactionRepo, agentRepo, revenueShareRepo, revenueShareEngine, auditService, webhookDispatcher, validate)
	revenueShareQueryService := service.NewRevenueShareQueryService(revenueShareRepo, agentRepo)
	dashboardService := service.NewDashboardService(agentRepo, transactionRepo, revenueShareRepo)
	webhookSettingService := service.NewWebhookSettingService(webhookSettingRepo, validate)

	// Initialize auth services
	authService := auth.NewAuthService(agentRepo, cfg)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	agentHandler := handlers.NewAgentHandler(agentService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	revenueShareHandler := handlers.NewRevenueShareHandler(revenueShareQueryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	webhookSettingHandler := handlers.NewWebhookSettingHandler(webhookSettingService)
	auditLogHandler := handlers.NewAuditLogHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Agent routes
		agents := v1.Group("/agents")
		{
			agents.GET("", agentHandler.GetAllAgents)
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/:id", agentHandler.GetAgent)
			agents.PUT("/:id", agentHandler.UpdateAgent)
			agents.DELETE("/:id", agentHandler.DeleteAgent)
			agents.GET("/:id/downline", agentHandler.GetAgentDownline)
			agents.GET("/:id/revenue-shares", revenueShareHandler.GetByRecipient)
		}

		// Transaction routes
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", transactionHandler.GetAllTransactions)
			transactions.POST("", transactionHandler.CreateTransaction)
			transactions.GET("/:id", transactionHandler.GetTransaction)
			transactions.PUT("/:id", transactionHandler.UpdateTransaction)
			transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
			transactions.GET("/:id/revenue-shares", revenueShareHandler.GetByTransaction)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/company", dashboardHandler.GetCompanySummary)
			dashboard.GET("/agents/:id", dashboardHandler.GetAgentSummary)
		}

		// Webhook subscription routes
		webhooks := v1.Group("/webhooks")
		{
			webhooks.GET("", webhookSettingHandler.GetAllWebhookSettings)
			webhooks.POST("", webhookSettingHandler.CreateWebhookSetting)
			webhooks.PUT("/:id", webhookSettingHandler.UpdateWebhookSetting)
			webhooks.DELETE("/:id", webhookSettingHandler.DeleteWebhookSetting)
		}

		// Audit history routes
		v1.GET("/audit-logs", auditLogHandler.GetAuditLogs)
	}

	return router
}
