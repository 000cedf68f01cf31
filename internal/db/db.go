package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barberia-reservas/internal/config"
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

var defaultCategories = []models.ServiceCategory{
	{Name: "Corte", Icon: "scissors", SortOrder: 1},
	{Name: "Barba", Icon: "razor", SortOrder: 2},
	{Name: "Combo", Icon: "star", SortOrder: 3},
	{Name: "Tratamiento", Icon: "droplet", SortOrder: 4},
}

func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsDevelopment() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMin) * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedLookups(db); err != nil {
		return nil, err
	}

	log.Info("database ready",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Barbershop{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Barber{},
		&models.WorkingHours{},
		&models.AppointmentStatus{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedLookups makes sure the fixed lookup rows exist. Status ids must match
// the appointment.Status constants.
func SeedLookups(db *gorm.DB) error {
	for _, st := range domain.AllStatuses() {
		row := models.AppointmentStatus{ID: uint(st), Name: st.String(), Color: st.Color()}
		if err := db.Where(models.AppointmentStatus{ID: uint(st)}).
			Attrs(row).
			FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed status %s: %w", st, err)
		}
	}

	for _, cat := range defaultCategories {
		row := cat
		if err := db.Where(models.ServiceCategory{Name: cat.Name}).
			Attrs(row).
			FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", cat.Name, err)
		}
	}

	return nil
}
