package services

import (
	"booking-backend/models"

	"gorm.io/gorm"
)

// RoomService wraps the *gorm.DB for room operations.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Find(&rooms).Error
	return rooms, err
}

// GetByNumber returns the first room with this room number. Duplicate room
// numbers are tolerated; the first match wins.
func (s *RoomService) GetByNumber(roomNumber string) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error
	return room, err
}

func (s *RoomService) GetByID(id int) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	return room, err
}

// Delete removes the room row and reports how many rows were affected, so
// the caller can treat zero as not-found (another delete may have won the
// race since the lookup).
func (s *RoomService) Delete(id int) (int64, error) {
	result := s.DB.Delete(&models.Room{}, id)
	return result.RowsAffected, result.Error
}
