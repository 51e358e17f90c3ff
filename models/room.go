package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room is a bookable unit. The catalog is seeded once at startup and never
// mutated afterwards.
type Room struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:120;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	PricePerNight float64        `gorm:"not null" json:"pricePerNight"`
	Capacity      int            `gorm:"not null" json:"capacity"`
	ImageURL      string         `gorm:"column:image_url;size:255" json:"imageUrl"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	CreatedAt     time.Time      `json:"-"`
}
