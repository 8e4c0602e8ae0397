package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"booking-backend/models"
	"booking-backend/services"
)

type roomTestEnv struct {
	db        *gorm.DB
	uploadDir string
}

func setupRoomRouter(t *testing.T) (*gin.Engine, *roomTestEnv) {
	db := setupBookingTestDB(t)
	uploadDir := t.TempDir()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	rc := NewRoomController(services.NewRoomService(db), services.NewImageService(uploadDir))
	r.POST("/api/add-room", rc.AddRoom)
	r.GET("/api/rooms", rc.GetRooms)
	r.DELETE("/api/rooms/:id", rc.DeleteRoom)

	return r, &roomTestEnv{db: db, uploadDir: uploadDir}
}

func roomFormRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		fw, err := w.CreateFormFile("img", "room.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("not really a jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/add-room", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validRoomFields() map[string]string {
	return map[string]string{
		"room_name":   "Sea View",
		"room_number": "101",
		"bed_count":   "2",
	}
}

func TestAddRoomAndFetch(t *testing.T) {
	router, env := setupRoomRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, roomFormRequest(t, validRoomFields(), true))

	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Room added successfully!", created["message"])
	assert.NotZero(t, created["roomId"])

	// The blob landed in the upload dir under its stored name.
	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-room.jpg"))

	// Round-trip through the single-room lookup.
	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/rooms?room_number=101", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "Sea View", room.RoomName)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, 2, room.BedCount)
	assert.Equal(t, entries[0].Name(), room.Img)
}

func TestAddRoomMissingFile(t *testing.T) {
	router, env := setupRoomRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, roomFormRequest(t, validRoomFields(), false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All fields are required"}`, w.Body.String())

	var count int64
	require.NoError(t, env.db.Model(&models.Room{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddRoomMissingFields(t *testing.T) {
	router, _ := setupRoomRouter(t)

	for _, field := range []string{"room_name", "room_number", "bed_count"} {
		fields := validRoomFields()
		delete(fields, field)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, roomFormRequest(t, fields, true))

		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
		assert.JSONEq(t, `{"error":"All fields are required"}`, w.Body.String())
	}
}

func TestAddRoomBadBedCount(t *testing.T) {
	router, _ := setupRoomRouter(t)

	fields := validRoomFields()
	fields["bed_count"] = "two"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, roomFormRequest(t, fields, true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomsList(t *testing.T) {
	router, _ := setupRoomRouter(t)

	for _, fields := range []map[string]string{
		{"room_name": "Sea View", "room_number": "101", "bed_count": "2"},
		{"room_name": "Garden", "room_number": "102", "bed_count": "1"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, roomFormRequest(t, fields, true))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/rooms", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
}

func TestGetRoomNotFound(t *testing.T) {
	router, _ := setupRoomRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/rooms?room_number=999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Room not found"}`, w.Body.String())
}

func TestDeleteRoom(t *testing.T) {
	router, env := setupRoomRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, roomFormRequest(t, validRoomFields(), true))
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := int(created["roomId"].(float64))

	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"message":"Room ID %d and associated image deleted successfully"}`, id),
		w.Body.String())

	// Row gone from subsequent listings, blob gone from the upload dir.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/rooms?room_number=101", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteRoomMissingImageTolerated(t *testing.T) {
	router, env := setupRoomRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, roomFormRequest(t, validRoomFields(), true))
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := int(created["roomId"].(float64))

	// Pull the blob out from under the row; delete must still succeed.
	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.Remove(filepath.Join(env.uploadDir, entries[0].Name())))

	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRoomInvalidID(t *testing.T) {
	router, _ := setupRoomRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/rooms/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid room ID"}`, w.Body.String())
}

func TestDeleteRoomNotFound(t *testing.T) {
	router, _ := setupRoomRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/rooms/9999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Room not found"}`, w.Body.String())
}
