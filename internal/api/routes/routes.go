package routes

import (
	"staff-roster-backend/internal/api/handlers"
	"staff-roster-backend/internal/api/middleware"
	"staff-roster-backend/internal/config"
	"staff-roster-backend/internal/holidayapi"
	"staff-roster-backend/internal/repository"
	"staff-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.HolidayImportService) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	partnershipRepo := repository.NewPartnershipRepository(db)
	scheduleRepo := repository.NewScheduleEntryRepository(db)
	dutyRepo := repository.NewDutyAssignmentRepository(db)
	capacityRepo := repository.NewCapacityConfigRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	importStatusRepo := repository.NewHolidayImportStatusRepository(db)

	// Initialize provider client
	holidayProvider := holidayapi.NewClient(cfg)

	// Initialize services
	dutyService := service.NewDutyAssignmentService(dutyRepo, teamRepo, scheduleRepo, validator)
	coverageService := service.NewCoverageService(teamRepo, partnershipRepo, scheduleRepo, holidayRepo, capacityRepo, cfg.CoverageThresholdPercent)
	capacityService := service.NewCapacityConfigService(capacityRepo, teamRepo, partnershipRepo, validator)
	importService := service.NewHolidayImportService(importStatusRepo, holidayRepo, holidayProvider, validator, cfg.ImportTimeout())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	dutyHandler := handlers.NewDutyAssignmentHandler(dutyService)
	coverageHandler := handlers.NewCoverageHandler(coverageService)
	capacityHandler := handlers.NewCapacityConfigHandler(capacityService)
	holidayHandler := handlers.NewHolidayHandler(importService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		health := v1.Group("/health")
		{
			health.GET("", healthHandler.Health)
			health.GET("/ready", healthHandler.Ready)
			health.GET("/live", healthHandler.Live)
		}

		duty := v1.Group("/duty-assignments")
		{
			duty.GET("", dutyHandler.ListByWeek)
			duty.POST("", dutyHandler.Add)
			duty.GET("/candidates", dutyHandler.Candidates)
			duty.PATCH("/:id", dutyHandler.Update)
			duty.DELETE("/:id", dutyHandler.Remove)
		}

		coverage := v1.Group("/coverage")
		{
			coverage.GET("/teams/:id", coverageHandler.TeamCoverage)
			coverage.GET("/partnerships/:id", coverageHandler.PartnershipCoverage)
		}

		capacity := v1.Group("/capacity")
		{
			capacity.GET("/teams/:id", capacityHandler.GetTeamConfig)
			capacity.PUT("/teams/:id", capacityHandler.UpsertTeamConfig)
			capacity.GET("/partnerships/:id", capacityHandler.GetPartnershipConfig)
			capacity.PUT("/partnerships/:id", capacityHandler.UpsertPartnershipConfig)
		}

		holidays := v1.Group("/holidays")
		{
			holidays.GET("", holidayHandler.List)
			holidays.POST("/import", holidayHandler.Import)
			holidays.GET("/import/status", holidayHandler.Status)
			holidays.POST("/import/reset", holidayHandler.Reset)
		}
	}

	return router, importService
}
