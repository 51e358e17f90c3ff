package config

import (
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayhub-backend/models"
)

// Connect opens the MySQL connection, runs migrations and seeds the starter
// room catalog. The returned handle is owned by main and reused across
// requests for the life of the process.
func Connect(cfg Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.MySQLDSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedRooms(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
	)
}

// SeedRooms inserts the starter catalog. It is a no-op whenever any room
// already exists, so repeated startups never duplicate the set.
func SeedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []models.Room{
		{
			Name:          "Standard Queen",
			Description:   "Cozy queen room overlooking the courtyard.",
			PricePerNight: 89,
			Capacity:      2,
			ImageURL:      "/images/standard-queen.jpg",
			Amenities:     datatypes.JSON([]byte(`["wifi","tv","air-conditioning"]`)),
		},
		{
			Name:          "Deluxe King",
			Description:   "Spacious king room with a city view and work desk.",
			PricePerNight: 129,
			Capacity:      3,
			ImageURL:      "/images/deluxe-king.jpg",
			Amenities:     datatypes.JSON([]byte(`["wifi","tv","air-conditioning","minibar"]`)),
		},
		{
			Name:          "Twin Garden",
			Description:   "Two single beds facing the garden terrace.",
			PricePerNight: 99,
			Capacity:      2,
			ImageURL:      "/images/twin-garden.jpg",
			Amenities:     datatypes.JSON([]byte(`["wifi","tv","kettle"]`)),
		},
		{
			Name:          "Family Suite",
			Description:   "Two connected rooms with a kitchenette, sleeps five.",
			PricePerNight: 189,
			Capacity:      5,
			ImageURL:      "/images/family-suite.jpg",
			Amenities:     datatypes.JSON([]byte(`["wifi","tv","air-conditioning","kitchenette","crib"]`)),
		},
		{
			Name:          "Penthouse Loft",
			Description:   "Top-floor loft with a private rooftop terrace.",
			PricePerNight: 259,
			Capacity:      4,
			ImageURL:      "/images/penthouse-loft.jpg",
			Amenities:     datatypes.JSON([]byte(`["wifi","tv","air-conditioning","minibar","jacuzzi"]`)),
		},
	}

	if err := db.Create(&rooms).Error; err != nil {
		return err
	}
	log.Printf("seeded %d starter rooms", len(rooms))
	return nil
}
