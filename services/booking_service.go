package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayhub-backend/models"
	"stayhub-backend/utils"
)

// BookingService owns the booking ledger: every read and write of booking
// rows goes through it.
type BookingService struct {
	DB    *gorm.DB
	rooms *RoomService

	mu        sync.Mutex
	roomLocks map[uint]*sync.Mutex
}

func NewBookingService(db *gorm.DB, rooms *RoomService) *BookingService {
	return &BookingService{
		DB:        db,
		rooms:     rooms,
		roomLocks: make(map[uint]*sync.Mutex),
	}
}

// roomLock returns the mutex serializing booking writes for one room.
// Writes on different rooms stay independent.
func (s *BookingService) roomLock(roomID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	return l
}

type CreateBookingInput struct {
	RoomID          uint   `json:"roomId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
}

func validateStayDates(checkIn, checkOut string) error {
	if checkIn == "" || checkOut == "" {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrValidation)
	}
	if !utils.ValidDate(checkIn) || !utils.ValidDate(checkOut) {
		return fmt.Errorf("%w: dates must be YYYY-MM-DD", ErrValidation)
	}
	if checkOut <= checkIn {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrValidation)
	}
	return nil
}

// SearchAvailable answers which rooms sleeping at least guests people are
// free for the whole stay [checkIn, checkOut). An empty result is not an
// error.
func (s *BookingService) SearchAvailable(checkIn, checkOut string, guests int) ([]models.Room, error) {
	if err := validateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.GetByMinCapacity(guests)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := s.ConfirmedForRoom(room.ID)
		if err != nil {
			return nil, err
		}
		free := true
		for _, b := range bookings {
			if utils.Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
				free = false
				break
			}
		}
		if free {
			available = append(available, room)
		}
	}
	return available, nil
}

// ConfirmedForRoom lists the bookings that count toward the no-double-booking
// invariant. Cancelled rows are excluded: a cancelled slot frees the room for
// the same dates.
func (s *BookingService) ConfirmedForRoom(roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("room_id = ? AND status = ?", roomID, models.BookingStatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("load bookings for room %d: %w", roomID, err)
	}
	return bookings, nil
}

// Create books a room for the half-open stay [checkIn, checkOut). The
// conflict check and the insert run under the room's lock inside one
// transaction, so two concurrent requests with overlapping dates on the same
// room can never both commit.
func (s *BookingService) Create(userID uint, in CreateBookingInput) (*models.Booking, *models.Room, error) {
	if in.RoomID == 0 {
		return nil, nil, fmt.Errorf("%w: roomId is required", ErrValidation)
	}
	if err := validateStayDates(in.CheckIn, in.CheckOut); err != nil {
		return nil, nil, err
	}
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if fullName == "" || email == "" || phone == "" {
		return nil, nil, fmt.Errorf("%w: fullName, email and phone are required", ErrValidation)
	}

	room, err := s.rooms.GetByID(in.RoomID)
	if err != nil {
		return nil, nil, err
	}

	lock := s.roomLock(room.ID)
	lock.Lock()
	defer lock.Unlock()

	booking := &models.Booking{
		ReferenceCode:   newReferenceCode(),
		UserID:          userID,
		RoomID:          room.ID,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		FullName:        fullName,
		Email:           email,
		Phone:           phone,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		Status:          models.BookingStatusConfirmed,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var conflicts int64
		err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status = ?", room.ID, models.BookingStatusConfirmed).
			Where("check_in < ? AND check_out > ?", in.CheckOut, in.CheckIn).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("count conflicting bookings: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return booking, room, nil
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking %d: %w", id, err)
	}
	return &booking, nil
}

// UserBooking is a ledger row enriched with the catalog fields a client
// needs to render the stay without a second lookup.
type UserBooking struct {
	models.Booking
	RoomName      string  `json:"roomName"`
	PricePerNight float64 `json:"pricePerNight"`
}

// ListForUser returns the user's bookings, newest stay first.
func (s *BookingService) ListForUser(userID uint) ([]UserBooking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room").
		Where("user_id = ?", userID).
		Order("check_in DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings for user %d: %w", userID, err)
	}

	out := make([]UserBooking, 0, len(bookings))
	for _, b := range bookings {
		ub := UserBooking{Booking: b}
		if b.Room != nil {
			ub.RoomName = b.Room.Name
			ub.PricePerNight = b.Room.PricePerNight
		}
		ub.Room = nil
		out = append(out, ub)
	}
	return out, nil
}

// Cancel flips a confirmed future booking to cancelled. A booking owned by
// another user is reported as not found, same as a missing one. The stay must
// not have started: a check-in equal to today is already ongoing.
func (s *BookingService) Cancel(bookingID, userID uint) error {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return ErrBookingNotFound
	}
	if booking.Status != models.BookingStatusConfirmed {
		return ErrNotCancellable
	}
	if booking.CheckIn <= utils.Today() {
		return ErrStayStarted
	}

	// Conditional update so a concurrent cancel of the same row loses cleanly.
	res := s.DB.Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
		Update("status", models.BookingStatusCancelled)
	if res.Error != nil {
		return fmt.Errorf("cancel booking %d: %w", bookingID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotCancellable
	}
	return nil
}
