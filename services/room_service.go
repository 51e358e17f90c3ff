package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stayhub-backend/models"
)

// RoomService is the read-only room catalog.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room %d: %w", id, err)
	}
	return &room, nil
}

// GetByMinCapacity lists rooms that sleep at least guests people. Anything
// below one guest is treated as one.
func (s *RoomService) GetByMinCapacity(guests int) ([]models.Room, error) {
	if guests < 1 {
		guests = 1
	}
	var rooms []models.Room
	err := s.DB.Where("capacity >= ?", guests).Order("id").Find(&rooms).Error
	return rooms, err
}
