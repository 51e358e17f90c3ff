package models

import "time"

// Booking status values. A booking is created confirmed and the only
// transition afterwards is confirmed -> cancelled.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	UserID        uint   `gorm:"column:user_id;index;not null" json:"userId"`
	RoomID        uint   `gorm:"column:room_id;index;not null" json:"roomId"`

	// Calendar days, half-open [CheckIn, CheckOut). Stored as YYYY-MM-DD so
	// lexicographic comparison matches date order, in Go and in SQL alike.
	CheckIn  string `gorm:"column:check_in;size:10;not null;index" json:"checkIn"`
	CheckOut string `gorm:"column:check_out;size:10;not null" json:"checkOut"`

	FullName        string `gorm:"column:full_name;size:120;not null" json:"fullName"`
	Email           string `gorm:"size:190;not null" json:"email"`
	Phone           string `gorm:"size:40;not null" json:"phone"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	Status    string    `gorm:"size:20;not null;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	Room *Room `gorm:"foreignKey:RoomID" json:"-"`
}
