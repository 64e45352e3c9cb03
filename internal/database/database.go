package database

import (
	"log"
	"os"
	"time"

	"gamereviews/backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported SQL drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open initializes a database connection for the given driver and runs migrations.
func Open(driver, dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	log.Printf("Database connection established (%s).", driver)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the games, reviews and authors tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Game{}, &models.Review{}, &models.Author{}); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	return nil
}
