// Package database provides database connection, migration and seeding
// functionality for the geography store.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherreport.app/config"
	"weatherreport.app/geodata"
	"weatherreport.app/models"
)

// InitDB initializes the database connection for the configured driver
func InitDB(config config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var dialector gorm.Dialector
	switch config.Driver {
	case "postgres":
		dialector = postgres.Open(config.GetDSN())
	default:
		dialector = sqlite.Open(config.DSN)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Country{},
		&models.City{},
		&models.Region{},
	)
}

// Seed validates the embedded geography dataset and loads it into the
// database. Existing rows are dropped first so a restart always reflects the
// current dataset.
func Seed(db *gorm.DB) error {
	if err := geodata.Validate(); err != nil {
		return fmt.Errorf("validate geography dataset: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Country{}, &models.City{}, &models.Region{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear geography table: %w", err)
			}
		}

		countries := geodata.Countries()
		if err := tx.Create(&countries).Error; err != nil {
			return fmt.Errorf("seed countries: %w", err)
		}
		cities := geodata.Cities()
		if err := tx.Create(&cities).Error; err != nil {
			return fmt.Errorf("seed cities: %w", err)
		}
		regions := geodata.Regions()
		if err := tx.Create(&regions).Error; err != nil {
			return fmt.Errorf("seed regions: %w", err)
		}
		return nil
	})
}

// CloseDB safely closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
