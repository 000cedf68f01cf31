package routes

import (
	"database/sql"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberia-reservas/internal/audit"
	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/authz"
	"github.com/BruksfildServices01/barberia-reservas/internal/config"
	"github.com/BruksfildServices01/barberia-reservas/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberia-reservas/internal/infra/repository"
	"github.com/BruksfildServices01/barberia-reservas/internal/media"
	"github.com/BruksfildServices01/barberia-reservas/internal/metrics"
	"github.com/BruksfildServices01/barberia-reservas/internal/middleware"
	"github.com/BruksfildServices01/barberia-reservas/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/barberia-reservas/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barberia-reservas/internal/usecase/catalog"
	"github.com/BruksfildServices01/barberia-reservas/internal/usecase/workinghours"
	"github.com/BruksfildServices01/barberia-reservas/internal/validators"
)

type Deps struct {
	DB      *gorm.DB
	SQL     *sql.DB
	Config  *config.Config
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
	Revoker auth.Revoker
	// Photos may be nil when object storage is not configured.
	Photos media.Store
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	workingHoursRepo := infraRepo.NewWorkingHoursGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.TokenTTL())

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.Booking.SlotStepMinutes,
		d.Log,
		d.Metrics,
	)

	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		d.Audit,
		d.Log,
		d.Metrics,
		ucAppointment.BookingOptions{GuardOverlap: cfg.Booking.GuardOverlap},
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		d.Audit,
		d.Log,
		d.Metrics,
	)

	clientDashboardUC := ucAppointment.NewListClientAppointments(appointmentRepo)
	barberAgendaUC := ucAppointment.NewListBarberAgenda(appointmentRepo)
	barberStatsUC := ucAppointment.NewGetBarberStats(appointmentRepo)

	scheduleUC := workinghours.NewManage(appointmentRepo, workingHoursRepo)
	browseUC := ucCatalog.NewBrowse(catalogRepo)

	accountOpts := account.Options{PhoneRegion: cfg.PhoneRegion}
	if cfg.Auth.VerifyEmailDomain {
		accountOpts.EmailDomainCheck = validators.IsEmailDomainValid
	}
	accounts := account.NewService(
		userRepo,
		tokens,
		d.Revoker,
		d.Photos,
		d.Audit,
		d.Log,
		accountOpts,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.SQL)
	authHandler := handlers.NewAuthHandler(accounts, handlers.CookieOptions{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.Auth.CookieSecure,
	}, d.Log)
	meHandler := handlers.NewMeHandler(accounts, d.Log)
	catalogHandler := handlers.NewCatalogHandler(browseUC, d.Log)
	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		createBookingUC,
		clientDashboardUC,
		cfg.Timezone,
		d.Log,
	)
	barberHandler := handlers.NewBarberHandler(
		barberAgendaUC,
		updateStatusUC,
		barberStatsUC,
		cfg.Timezone,
		d.Log,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(scheduleUC, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, d.Log)

	authn := middleware.AuthMiddleware(tokens, d.Revoker, cfg.Auth.CookieName, d.Log)
	can := middleware.RequirePermission

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authn, authHandler.Logout)

	api := r.Group("/api")
	{
		api.GET("/barbershops", catalogHandler.List)
		api.GET("/barbershops/:id", catalogHandler.Detail)

		secured := api.Group("/")
		secured.Use(authn)
		{
			secured.GET("/me", can(authz.PermManageOwnProfile), meHandler.GetMe)
			secured.POST("/me/photo", can(authz.PermManageOwnProfile), meHandler.UploadPhoto)

			secured.POST("/appointments", can(authz.PermBookAppointment), appointmentHandler.Create)
		}
	}

	// ======================================================
	// CLIENT
	// ======================================================
	client := r.Group("/client")
	client.Use(authn)
	{
		client.GET("/available-slots", can(authz.PermBookAppointment), appointmentHandler.AvailableSlots)
		client.GET("/book/:barbershopId", can(authz.PermBookAppointment), catalogHandler.Detail)
		client.POST("/book/:barbershopId", can(authz.PermBookAppointment), appointmentHandler.BookForm)
		client.GET("/dashboard", can(authz.PermViewOwnBookings), appointmentHandler.Dashboard)
	}

	// ======================================================
	// BARBER
	// ======================================================
	barber := r.Group("/barber")
	barber.Use(authn)
	{
		barber.GET("/agenda", can(authz.PermManageAgenda), barberHandler.Agenda)
		barber.PATCH("/appointments/:id/status", can(authz.PermManageAgenda), barberHandler.UpdateStatus)
		barber.GET("/stats", can(authz.PermViewBarberStats), barberHandler.Stats)

		barber.GET("/working-hours", can(authz.PermManageSchedule), workingHoursHandler.Get)
		barber.PUT("/working-hours", can(authz.PermManageSchedule), workingHoursHandler.Upsert)
		barber.DELETE("/working-hours/:weekday", can(authz.PermManageSchedule), workingHoursHandler.Deactivate)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/admin")
	admin.Use(authn, can(authz.PermViewAuditLogs))
	{
		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
