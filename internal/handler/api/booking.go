package api

import (
	"errors"
	"net/http"

	"fleetbook/internal/domain/booking"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

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

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToCommand(), memberID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.UpdateBooking(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// abortBookingError maps command failures onto statuses. Rejection
// reasons from the acceptance chain keep their exact wording; malformed
// input is a 400, missing referents a 404, lost write races a 409.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrStartAfterEnd),
		errors.Is(err, booking.ErrSpanTooLong),
		errors.Is(err, booking.ErrNegativeAllocation),
		errors.Is(err, booking.ErrDuplicateMember):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, booking.ErrNotGoodStanding),
		errors.Is(err, booking.ErrInsufficientCredits),
		errors.Is(err, booking.ErrDaySkipperRequired),
		errors.Is(err, booking.ErrCruiseSkipperRequired),
		errors.Is(err, booking.ErrBoatNotOperational),
		errors.Is(err, booking.ErrAlreadyReserved):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error())
	case errors.Is(err, booking.ErrBoatNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error())
	case errors.Is(err, commands.ErrMemberNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "member not found")
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "booking not found")
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "booking was modified concurrently")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
