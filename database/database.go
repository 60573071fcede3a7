package database

import (
	"skybooks/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDatabase(dsn string) {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		logrus.Fatalf("Failed to get database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logrus.Fatalf("Database is not reachable: %v", err)
	}

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	logrus.Info("Database connection and migration completed")
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Customer{},
		&model.Employee{},
		&model.Publisher{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.PurchaseOrder{},
		&model.PurchaseOrderItem{},
		&model.News{},
	)
}
