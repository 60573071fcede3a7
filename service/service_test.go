package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skybooks/database"
	"skybooks/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price, discount float64, stock int) model.Product {
	t.Helper()

	product := model.Product{
		Title:           title,
		Price:           price,
		DiscountPercent: discount,
		StockQuantity:   stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
