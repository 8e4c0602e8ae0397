package services

import (
	"booking-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService wraps the *gorm.DB for booking operations.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create inserts one booking row and fills in its assigned ID.
func (s *BookingService) Create(booking *models.Booking) error {
	return s.DB.Create(booking).Error
}

// CountForDate counts bookings matching exactly this room number and date.
// Availability is that count being zero; it is advisory only — the unique
// index on (room_number, booking_date) is what actually prevents a double
// booking at insert time.
func (s *BookingService) CountForDate(roomNumber string, date datatypes.Date) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Booking{}).
		Where("room_number = ? AND booking_date = ?", roomNumber, date).
		Count(&count).Error
	return count, err
}
