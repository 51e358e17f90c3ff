package config

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayhub-backend/models"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedRooms_SeedsOnce(t *testing.T) {
	db := openSeedTestDB(t)

	require.NoError(t, SeedRooms(db))

	var first int64
	require.NoError(t, db.Model(&models.Room{}).Count(&first).Error)
	assert.Greater(t, first, int64(0))

	// re-running the bootstrap must not duplicate the starter set
	require.NoError(t, SeedRooms(db))

	var second int64
	require.NoError(t, db.Model(&models.Room{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestSeedRooms_LeavesExistingCatalogAlone(t *testing.T) {
	db := openSeedTestDB(t)

	custom := models.Room{Name: "Custom Cabin", Capacity: 2, PricePerNight: 70}
	require.NoError(t, db.Create(&custom).Error)

	require.NoError(t, SeedRooms(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMySQLDSN(t *testing.T) {
	cfg := Config{
		DBHost: "db.internal",
		DBPort: "3307",
		DBUser: "stayhub",
		DBPass: "s3cret",
		DBName: "stayhub_db",
	}
	assert.Equal(t,
		"stayhub:s3cret@tcp(db.internal:3307)/stayhub_db?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.MySQLDSN(),
	)
}
