package api

import (
	"errors"
	"net/http"
	"time"

	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	boatQueries  queries.BoatQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, boatQueries queries.BoatQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		boatQueries:  boatQueries,
	}
}

func (h *AvailabilityHandler) GetBoats(c *gin.Context) {
	boats, err := h.boatQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, boats)
}

func (h *AvailabilityHandler) GetBoat(c *gin.Context) {
	boatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid boat ID format",
		})
		return
	}

	boat, err := h.boatQueries.GetByID(c.Request.Context(), boatID)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, boat)
}

// GetAvailableStarts lists the bookable start times for one calendar
// day on the fine-grained grid.
func (h *AvailabilityHandler) GetAvailableStarts(c *gin.Context) {
	boatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid boat ID format",
		})
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availability.AvailableStarts(c.Request.Context(), boatID, day)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{BoatID: boatID.String(), Slots: slots})
}

// GetAvailableEnds lists the reachable end times for a chosen start on
// the coarse grid, bounded by the next reservation and the span cap.
func (h *AvailabilityHandler) GetAvailableEnds(c *gin.Context) {
	boatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid boat ID format",
		})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing start, expected RFC 3339",
		})
		return
	}

	slots, err := h.availability.AvailableEnds(c.Request.Context(), boatID, start)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SlotsResponse{BoatID: boatID.String(), Slots: slots})
}

func (h *AvailabilityHandler) abortQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrBoatNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Boat not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
