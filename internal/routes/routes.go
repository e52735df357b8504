package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rushdesk/rush-scheduler/internal/audit"
	"github.com/rushdesk/rush-scheduler/internal/config"
	"github.com/rushdesk/rush-scheduler/internal/gridcache"
	"github.com/rushdesk/rush-scheduler/internal/handlers"
	infraRepo "github.com/rushdesk/rush-scheduler/internal/infra/repository"
	"github.com/rushdesk/rush-scheduler/internal/middleware"
	"github.com/rushdesk/rush-scheduler/internal/pdfarchive"
	"github.com/rushdesk/rush-scheduler/internal/pdfparser"
	"github.com/rushdesk/rush-scheduler/internal/usecase/intake"
	ucScheduling "github.com/rushdesk/rush-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	gridCache := gridcache.New(rdb, log)

	parserClient := pdfparser.NewClient(cfg.ParserURL, log)
	archive := pdfarchive.New(pdfarchive.Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	gridUC := ucScheduling.NewGetSchedulerGrid(schedulingRepo, gridCache)

	scheduleUC := ucScheduling.NewScheduleInterview(
		schedulingRepo,
		auditDispatcher,
		gridCache,
	)

	unscheduleUC := ucScheduling.NewUnscheduleInterview(
		schedulingRepo,
		auditDispatcher,
		gridCache,
	)

	// ======================================================
	// USE CASES — INTAKE
	// ======================================================
	importUC := intake.NewImportApplication(
		schedulingRepo,
		parserClient,
		archive,
		auditDispatcher,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	interviewDateHandler := handlers.NewInterviewDateHandler(db)
	rusheeHandler := handlers.NewRusheeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	schedulerHandler := handlers.NewSchedulerHandler(gridUC, scheduleUC, unscheduleUC)
	applicationHandler := handlers.NewApplicationHandler(importUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// MEMBER
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/interview-dates", interviewDateHandler.List)

			secured.GET("/me/availabilities", availabilityHandler.ListMine)
			secured.POST("/me/availabilities", availabilityHandler.Create)
			secured.DELETE("/me/availabilities/:id", availabilityHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/interview-dates", interviewDateHandler.Create)
				admin.DELETE("/interview-dates/:id", interviewDateHandler.Delete)

				admin.GET("/rushees", rusheeHandler.List)
				admin.GET("/rushees/:id", rusheeHandler.Get)
				admin.GET("/rushees/:id/availabilities", rusheeHandler.Availabilities)

				admin.GET("/scheduler/grid", schedulerHandler.Grid)
				admin.POST("/scheduler/assignments", schedulerHandler.Schedule)
				admin.DELETE("/scheduler/assignments/:id", schedulerHandler.Unschedule)

				admin.POST("/applications/preview", applicationHandler.Preview)
				admin.POST("/applications/import", applicationHandler.Import)
				admin.POST("/applications/commit", applicationHandler.Commit)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
