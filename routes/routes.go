package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"booking-backend/config"
	"booking-backend/controllers"
	"booking-backend/middleware"
)

// SetupRouter wires the endpoints, the CORS policy, and the static image
// mount onto a gin engine.
func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	cfg *config.Config,
) *gin.Engine {
	r := gin.Default()
	r.Static("/uploads", cfg.UploadDir)

	// Single configured frontend origin, four methods.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.CORSOrigin},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	{
		api.POST("/book", bc.CreateBooking)
		api.GET("/available", bc.CheckAvailability)

		api.POST("/add-room", rc.AddRoom)
		api.GET("/rooms", rc.GetRooms)
		api.DELETE("/rooms/:id", rc.DeleteRoom)
	}

	return r
}
