package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Request a booking for an item; it starts in WAITING status
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	bookingRM, err := h.bookingCommands.RequestBooking(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrItemNotFound), errors.Is(err, errs.ErrOwnItemBooking):
			// Booking one's own item reads as a missing item on purpose.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, errs.ErrItemUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking")
		case errors.Is(err, errs.ErrInvalidPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period")
		case errors.Is(err, errs.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting booking already exists")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingRM))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking as the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param bookingId path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "bookingId", "booking")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter")
		return
	}

	bookingRM, err := h.bookingCommands.Decide(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrBookingAlreadyDecided):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is not in available status")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}

// @Summary Get booking
// @Description Get a booking visible to its booker or the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "bookingId", "booking")
	if !ok {
		return
	}

	bookingRM, err := h.bookingQueries.GetForParticipant(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}

// @Summary List bookings by booker
// @Description List the caller's bookings filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Index of the first record" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	h.listBookings(c, h.bookingQueries.ListForBooker)
}

// @Summary List bookings by owner
// @Description List bookings placed against the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Index of the first record" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, h.bookingQueries.ListForOwner)
}

func (h *BookingHandler) listBookings(
	c *gin.Context,
	list func(ctx context.Context, userID uuid.UUID, state string, from, size int) ([]*queries.BookingView, error),
) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}
	state := c.DefaultQuery("state", "ALL")

	bookingsRM, err := list(c.Request.Context(), userID, state, from, size)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrUnknownState):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: " + state)
		case errors.Is(err, queries.ErrInvalidPage):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(bookingsRM))
}
