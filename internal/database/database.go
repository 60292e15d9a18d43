package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sevasetu/ngo-backend/internal/config"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// newGormConfig is shared by Connect and the tests so both run with the same
// error-translation behavior. TranslateError is required for unique-index
// violations to surface as gorm.ErrDuplicatedKey instead of raw driver errors.
func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), newGormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.UserRole{},
		&models.Staff{},
		&models.AttendanceRecord{},
		&models.IncomeCategory{},
		&models.ExpenseCategory{},
		&models.IncomeRecord{},
		&models.ExpenseRecord{},
		&models.FundAccount{},
		&models.FoodItem{},
		&models.MedicineItem{},
		&models.ContactMessage{},
		&models.SiteSetting{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
