package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/InstitutAurelia/institute-scheduler/internal/audit"
	"github.com/InstitutAurelia/institute-scheduler/internal/cache"
	"github.com/InstitutAurelia/institute-scheduler/internal/config"
	"github.com/InstitutAurelia/institute-scheduler/internal/handlers"
	infraRepo "github.com/InstitutAurelia/institute-scheduler/internal/infra/repository"
	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	ucBlocked "github.com/InstitutAurelia/institute-scheduler/internal/usecase/blockedslot"
	ucReservation "github.com/InstitutAurelia/institute-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availabilityCache := cache.New(cfg.RedisAddr, log)

	// ======================================================
	// USE CASES — RÉSERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	confirmReservationUC := ucReservation.NewConfirmReservation(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	listByDateUC := ucReservation.NewListReservationsByDate(scheduleRepo)
	listByMonthUC := ucReservation.NewListReservationsByMonth(scheduleRepo)

	availabilityUC := ucReservation.NewGetDayAvailability(
		scheduleRepo,
		availabilityCache,
	)

	// ======================================================
	// USE CASES — BLOCAGES
	// ======================================================
	blockSlotUC := ucBlocked.NewBlockSlot(scheduleRepo, auditDispatcher, availabilityCache)
	unblockSlotUC := ucBlocked.NewUnblockSlot(scheduleRepo, auditDispatcher, availabilityCache)
	listBlockedUC := ucBlocked.NewListBlockedSlots(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	instituteHandler := handlers.NewInstituteHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		confirmReservationUC,
		cancelReservationUC,
		completeReservationUC,
		listByDateUC,
		listByMonthUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(blockSlotUC, unblockSlotUC, listBlockedUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
		// API PRIVÉE (BACK-OFFICE)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/institute", instituteHandler.GetMeInstitute)
			secured.PATCH("/me/institute", instituteHandler.UpdateMeInstitute)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// PLANNING
			// ------------------------------
			secured.GET("/me/availability", availabilityHandler.Day)

			secured.GET("/me/blocked-slots", blockedSlotHandler.List)
			secured.POST("/me/blocked-slots", blockedSlotHandler.Create)
			secured.DELETE("/me/blocked-slots/:id", blockedSlotHandler.Delete)

			// ------------------------------
			// RÉSERVATIONS
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/month", reservationHandler.ListByMonth)
			secured.PATCH("/me/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/me/reservations/:id/complete", reservationHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
