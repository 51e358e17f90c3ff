package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type RoomController struct {
	rooms    *services.RoomService
	bookings *services.BookingService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService) *RoomController {
	return &RoomController{rooms: rooms, bookings: bookings}
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.rooms.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := rc.rooms.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room})
}

// SearchAvailability answers GET /api/rooms/availability?checkIn=&checkOut=&guests=.
func (rc *RoomController) SearchAvailability(c *gin.Context) {
	guests := 1
	if raw := c.Query("guests"); raw != "" {
		g, err := strconv.Atoi(raw)
		if err != nil || g < 1 {
			utils.JSONError(c, http.StatusBadRequest, "guests must be a positive integer")
			return
		}
		guests = g
	}

	rooms, err := rc.bookings.SearchAvailable(c.Query("checkIn"), c.Query("checkOut"), guests)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}
