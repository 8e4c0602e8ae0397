package models

// Room is a bookable room. RoomNumber is the natural key used by the
// availability check; the application does not force it unique, and the
// single-room lookup returns the first match.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomName   string `json:"room_name" gorm:"column:room_name;type:varchar(255)"`
	RoomNumber string `json:"room_number" gorm:"column:room_number;index;type:varchar(50)"`
	BedCount   int    `json:"bed_count" gorm:"column:bed_count"`

	// Img is the stored image filename, relative to the upload directory.
	// Set once when the room is created, never updated.
	Img string `json:"img" gorm:"column:img;type:varchar(255)"`
}
