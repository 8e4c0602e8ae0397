package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"booking-backend/models"
	"booking-backend/services"
	"booking-backend/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
)

const bookingDateLayout = "2006-01-02"

// CreateBookingRequest is the POST /api/book payload. All fields are
// required; validation happens after binding so a missing field reports the
// same error as an empty one.
type CreateBookingRequest struct {
	RoomNumber  string `json:"room_number"`
	Quantity    int    `json:"quantity"`
	Name        string `json:"name"`
	Persons     int    `json:"persons"`
	BookingDate string `json:"booking_date"`
}

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

func parseBookingDate(raw string) (datatypes.Date, error) {
	t, err := time.Parse(bookingDateLayout, raw)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// isDuplicateKeyError detects a unique-index violation. MySQL reports 1062;
// the string checks cover drivers that don't expose a typed error.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// ----------------------------------------------------
// 1. Create Booking (POST /api/book)
// ----------------------------------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.Name = strings.TrimSpace(req.Name)
	if req.RoomNumber == "" || req.Quantity <= 0 || req.Name == "" || req.Persons <= 0 || req.BookingDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	date, err := parseBookingDate(req.BookingDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "booking_date must be YYYY-MM-DD")
		return
	}

	booking := models.Booking{
		RoomNumber:  req.RoomNumber,
		Quantity:    req.Quantity,
		Name:        req.Name,
		Persons:     req.Persons,
		BookingDate: date,
	}

	if err := ctrl.Bookings.Create(&booking); err != nil {
		if isDuplicateKeyError(err) {
			log.Printf("⚠️ Duplicate booking for room %s on %s", req.RoomNumber, req.BookingDate)
			utils.JSONError(c, http.StatusConflict, "Room already booked for this date")
			return
		}
		log.Printf("❌ Error adding booking: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking successful",
		"bookingId": booking.ID,
	})
}

// ----------------------------------------------------
// 2. Check Availability (GET /api/available)
// ----------------------------------------------------

// CheckAvailability reports whether any booking exists for the exact
// (room_number, booking_date) pair. Advisory: nothing stops another request
// from booking between this read and a later insert, but the unique index
// turns that race into a 409 rather than a double booking.
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	roomNumber := c.Query("room_number")
	bookingDate := c.Query("booking_date")

	if roomNumber == "" || bookingDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_number and booking_date are required")
		return
	}

	date, err := parseBookingDate(bookingDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "booking_date must be YYYY-MM-DD")
		return
	}

	count, err := ctrl.Bookings.CountForDate(roomNumber, date)
	if err != nil {
		log.Printf("❌ Error checking availability: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": count == 0})
}
