package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"booking-backend/models"
	"booking-backend/services"
	"booking-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	Rooms  *services.RoomService
	Images *services.ImageService
}

func NewRoomController(rooms *services.RoomService, images *services.ImageService) *RoomController {
	return &RoomController{Rooms: rooms, Images: images}
}

// ----------------------------------------------------
// 1. Add Room (POST /api/add-room, multipart form)
// ----------------------------------------------------

func (ctrl *RoomController) AddRoom(c *gin.Context) {
	roomName := strings.TrimSpace(c.PostForm("room_name"))
	roomNumber := strings.TrimSpace(c.PostForm("room_number"))
	bedCountRaw := strings.TrimSpace(c.PostForm("bed_count"))

	file, fileErr := c.FormFile("img")
	if roomName == "" || roomNumber == "" || bedCountRaw == "" || fileErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	bedCount, err := strconv.Atoi(bedCountRaw)
	if err != nil || bedCount <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "bed_count must be a positive integer")
		return
	}

	filename, err := ctrl.Images.Save(file)
	if err != nil {
		log.Printf("❌ Error saving room image: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error saving image")
		return
	}

	room := models.Room{
		RoomName:   roomName,
		RoomNumber: roomNumber,
		BedCount:   bedCount,
		Img:        filename,
	}

	if err := ctrl.Rooms.Create(&room); err != nil {
		// Don't leave an orphaned blob behind a failed insert.
		if rmErr := ctrl.Images.Remove(filename); rmErr != nil {
			log.Printf("⚠️ Failed to clean up image %s after insert failure: %v", filename, rmErr)
		}
		log.Printf("❌ Error adding room: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room added successfully!",
		"roomId":  room.ID,
	})
}

// ----------------------------------------------------
// 2. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

// GetRooms returns all rooms, or a single room when ?room_number= is given.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	roomNumber := c.Query("room_number")

	if roomNumber != "" {
		room, err := ctrl.Rooms.GetByNumber(roomNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Room not found")
				return
			}
			log.Printf("❌ Error retrieving room %s: %v", roomNumber, err)
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
			return
		}
		c.JSON(http.StatusOK, room)
		return
	}

	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		log.Printf("❌ Error retrieving rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 3. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

// DeleteRoom removes the row first and the image second. Once the row is
// gone the request succeeds; an image that fails to delete is only logged.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := ctrl.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		log.Printf("❌ Error retrieving room %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Error retrieving room details")
		return
	}

	affected, err := ctrl.Rooms.Delete(id)
	if err != nil {
		log.Printf("❌ Error deleting room %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Error deleting room")
		return
	}
	if affected == 0 {
		// Another delete won between the lookup and here.
		log.Printf("⚠️ No room found with ID %d", id)
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	if err := ctrl.Images.Remove(room.Img); err != nil {
		log.Printf("⚠️ Error deleting image %s: %v", room.Img, err)
	}

	log.Printf("✅ Room ID %d deleted.", id)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Room ID %d and associated image deleted successfully", id),
	})
}
