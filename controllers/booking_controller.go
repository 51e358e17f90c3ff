package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, room, err := bc.bookings.Create(middleware.CurrentUserID(c), input)
	if err != nil {
		renderBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"booking": booking, "room": room})
}

func (bc *BookingController) GetMyBookings(c *gin.Context) {
	bookings, err := bc.bookings.ListForUser(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		// A malformed id can't belong to the caller either way.
		utils.JSONError(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		return
	}

	if err := bc.bookings.Cancel(uint(id), middleware.CurrentUserID(c)); err != nil {
		renderBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"ok": true})
}

func renderBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound), errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "room no longer available, try different dates")
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrStayStarted):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
