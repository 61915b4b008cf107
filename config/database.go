package config

import (
	"fmt"

	"github.com/filemyrti/rti-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the schema
func InitDB(config *Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	DB = db

	if err := MigrateModels(DB); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}

	return nil
}

// MigrateModels runs AutoMigrate for every model. Split out so tests can
// migrate an in-memory database with the same schema.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.State{},
		&models.Consultation{},
		&models.CallbackRequest{},
		&models.ContactMessage{},
		&models.CareerApplication{},
		&models.NewsletterSubscriber{},
		&models.RTIApplication{},
		&models.PaymentRecovery{},
	)
}
