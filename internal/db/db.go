package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/config"
	"github.com/cisnebranco/grooming-os/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Breed{},
		&models.Pet{},
		&models.Groomer{},
		&models.ServiceType{},
		&models.PricingMatrix{},
		&models.BreedServicePrice{},
		&models.AvailabilityWindow{},
		&models.Appointment{},
		&models.ServiceOrder{},
		&models.OrderServiceItem{},
		&models.PaymentEvent{},
		&models.InspectionPhoto{},
		&models.HealthChecklist{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Double-booking is enforced by the database, not by the application:
	// overlapping active appointments for the same groomer are rejected at
	// commit time via a range exclusion constraint.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            groomer_id WITH =,
            tsrange(scheduled_start, scheduled_end) WITH &&
        )
        WHERE (status NOT IN ('CANCELLED', 'NO_SHOW'))
    `)

	return db
}
