package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
	"stayhub-backend/services"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	auth *services.AuthService,
	corsOrigins string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", ac.Register)
			authRoutes.POST("/login", ac.Login)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must stay before /:id
			rooms.GET("/availability", rc.SearchAvailability)

			rooms.GET("/:id", rc.GetRoomByID)
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.Auth(auth))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetMyBookings)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}
	}

	return r
}
