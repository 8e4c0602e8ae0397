package models

import (
	"gorm.io/datatypes"
)

// Booking is one reservation of a room for a date. Rows are append-only:
// the service never updates or deletes them.
//
// The composite unique index on (room_number, booking_date) closes the race
// between the availability check and the insert at the store level: the
// second writer for the same pair loses with a duplicate-key error.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string         `json:"room_number" gorm:"column:room_number;type:varchar(50);uniqueIndex:idx_room_date"`
	Quantity    int            `json:"quantity" gorm:"column:quantity"`
	Name        string         `json:"name" gorm:"column:name;type:varchar(255)"`
	Persons     int            `json:"persons" gorm:"column:persons"`
	BookingDate datatypes.Date `json:"booking_date" gorm:"column:booking_date;uniqueIndex:idx_room_date"`
}
