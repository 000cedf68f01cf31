package main

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/authz"
	"github.com/BruksfildServices01/barberia-reservas/internal/config"
	dbpkg "github.com/BruksfildServices01/barberia-reservas/internal/db"
	"github.com/BruksfildServices01/barberia-reservas/internal/logs"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
)

// demoPassword is shared by every seeded account.
const demoPassword = "barberia123"

type serviceSeed struct {
	category string
	name     string
	price    float64
	minutes  int
}

var services = []serviceSeed{
	{"Corte", "Corte clásico", 25000, 30},
	{"Corte", "Corte fade", 30000, 45},
	{"Barba", "Perfilado de barba", 15000, 30},
	{"Combo", "Corte + barba", 40000, 60},
	{"Tratamiento", "Mascarilla facial", 20000, 30},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logs.New(cfg)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("database unavailable", slog.Any("error", err))
		os.Exit(1)
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		log.Error("hash password", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		if err := dbpkg.SeedLookups(tx); err != nil {
			return err
		}
		return seed(tx, hash)
	}); err != nil {
		log.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("demo data ready", slog.String("password", demoPassword))
}

func wipe(tx *gorm.DB) error {
	return tx.Exec(`TRUNCATE TABLE
		audit_logs, appointments, working_hours, barbers, services,
		service_categories, appointment_statuses, barbershops, users
		RESTART IDENTITY CASCADE`).Error
}

func newUser(email, first, last, phone string, role authz.Role, hash string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		Phone:        phone,
		Role:         string(role),
		Active:       true,
	}
}

func seed(tx *gorm.DB, hash string) error {
	admin := newUser("admin@barberia.test", "Ana", "Admin", "+573001110000", authz.RoleAdmin, hash)
	owner := newUser("owner@barberia.test", "Oscar", "Dueño", "+573001110001", authz.RoleOwner, hash)
	client := newUser("cliente@barberia.test", "Camila", "Ruiz", "+573001110002", authz.RoleClient, hash)
	barberUsers := []*models.User{
		newUser("carlos@barberia.test", "Carlos", "Mejía", "+573001110010", authz.RoleBarber, hash),
		newUser("david@barberia.test", "David", "Torres", "+573001110011", authz.RoleBarber, hash),
		newUser("elena@barberia.test", "Elena", "Gómez", "+573001110012", authz.RoleBarber, hash),
	}

	for _, u := range append([]*models.User{admin, owner, client}, barberUsers...) {
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}
	}

	shops := []*models.Barbershop{
		{
			Name: "Barbería Central", Address: "Cra 7 # 12-30", City: "Bogotá",
			Phone: "+576013334455", Description: "Cortes clásicos en el centro",
			OpensAt: "09:00", ClosesAt: "19:00", OwnerID: owner.ID, Active: true,
		},
		{
			Name: "Navaja Norte", Address: "Calle 100 # 15-20", City: "Bogotá",
			Phone: "+576013334466", Description: "Barba y tratamientos",
			OpensAt: "10:00", ClosesAt: "20:00", OwnerID: owner.ID, Active: true,
		},
	}
	for _, s := range shops {
		if err := tx.Create(s).Error; err != nil {
			return fmt.Errorf("barbershop %s: %w", s.Name, err)
		}
	}

	var categories []models.ServiceCategory
	if err := tx.Find(&categories).Error; err != nil {
		return err
	}
	categoryIDs := make(map[string]uint, len(categories))
	for _, c := range categories {
		categoryIDs[c.Name] = c.ID
	}

	for _, shop := range shops {
		for _, s := range services {
			svc := models.Service{
				BarbershopID:    shop.ID,
				CategoryID:      categoryIDs[s.category],
				Name:            s.name,
				Price:           s.price,
				DurationMinutes: s.minutes,
				Active:          true,
			}
			if err := tx.Omit("Category").Create(&svc).Error; err != nil {
				return fmt.Errorf("service %s: %w", s.name, err)
			}
		}
	}

	for i, u := range barberUsers {
		b := models.Barber{
			UserID:          u.ID,
			BarbershopID:    shops[i%len(shops)].ID,
			Specialty:       "Cortes modernos",
			YearsExperience: 3 + i*2,
			Rating:          4.9 - float64(i)*0.2,
			Active:          true,
		}
		if err := tx.Omit("User", "Barbershop").Create(&b).Error; err != nil {
			return fmt.Errorf("barber %s: %w", u.Email, err)
		}

		if err := seedWeek(tx, b.ID); err != nil {
			return err
		}
	}

	return nil
}

// Weekdays in schedule numbering.
const (
	monday   = 2
	saturday = 7
)

// seedWeek opens Monday to Saturday, with a short Saturday.
func seedWeek(tx *gorm.DB, barberID uint) error {
	for day := monday; day <= saturday; day++ {
		wh := models.WorkingHours{
			BarberID:  barberID,
			Weekday:   day,
			StartTime: "09:00",
			EndTime:   "18:00",
			Active:    true,
		}
		if day == saturday {
			wh.EndTime = "14:00"
		}
		if err := tx.Create(&wh).Error; err != nil {
			return fmt.Errorf("working hours %d/%d: %w", barberID, day, err)
		}
	}
	return nil
}
