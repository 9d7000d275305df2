package repository

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"court-reservation-server/internal/domain"
)

// Open connects to the configured database. SQLite is the default so a
// fresh checkout runs without external services; postgres is selected
// with DB_DRIVER=postgres.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch driver {
	case "", "sqlite":
		dial = sqlite.Open(dsn)
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Client{},
		&domain.Court{},
		&domain.Reservation{},
		&domain.AuditEntry{},
	)
}

// Seed inserts demo courts and clients when their tables are empty.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&domain.Court{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		courts := []domain.Court{
			{Name: "Cancha Norte", Category: "Fútbol", Location: "Zona A"},
			{Name: "Cancha Sur", Category: "Baloncesto", Location: "Zona B"},
			{Name: "Cancha Central", Category: "Tenis", Location: "Zona C"},
			{Name: "Cancha Techada", Category: "Fútbol", Location: "Zona D"},
			{Name: "Cancha Sintética", Category: "Fútbol", Location: "Zona E"},
		}
		if err := db.Create(&courts).Error; err != nil {
			return err
		}
		log.Printf("[db] seeded %d courts", len(courts))
	}
	if err := db.Model(&domain.Client{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		clients := []domain.Client{
			{FirstName: "Carlos", LastName: "Pérez", Phone: "300111222", Email: "carlos@mail.com"},
			{FirstName: "María", LastName: "Gómez", Phone: "300222333", Email: "maria@mail.com"},
			{FirstName: "Juan", LastName: "Rodríguez", Phone: "300333444", Email: "juan@mail.com"},
			{FirstName: "Laura", LastName: "Martínez", Phone: "300444555", Email: "laura@mail.com"},
			{FirstName: "Andrés", LastName: "Suárez", Phone: "300555666", Email: "andres@mail.com"},
		}
		if err := db.Create(&clients).Error; err != nil {
			return err
		}
		log.Printf("[db] seeded %d clients", len(clients))
	}
	return nil
}
