package api

import (
	"errors"
	"net/http"

	"fleetbook/internal/domain/boat"
	"fleetbook/internal/domain/member"
	reqdto "fleetbook/internal/handler/dto/request"
	"fleetbook/internal/handler/httperr"
	"fleetbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// FleetHandler covers the admin-only management endpoints.
type FleetHandler struct {
	fleetCommands commands.FleetCommands
}

func NewFleetHandler(fleetCommands commands.FleetCommands) *FleetHandler {
	return &FleetHandler{
		fleetCommands: fleetCommands,
	}
}

func (h *FleetHandler) CreateBoat(c *gin.Context) {
	var req reqdto.CreateBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.fleetCommands.CreateBoat(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, boat.ErrEmptyBoatName),
			errors.Is(err, boat.ErrBoatNameTooLong),
			errors.Is(err, boat.ErrNegativeRate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *FleetHandler) RegisterMember(c *gin.Context) {
	var req reqdto.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.fleetCommands.RegisterMember(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "email already registered")
		case errors.Is(err, member.ErrInvalidEmail),
			errors.Is(err, member.ErrPasswordTooWeak),
			errors.Is(err, member.ErrInvalidRole),
			errors.Is(err, member.ErrInvalidStanding),
			errors.Is(err, member.ErrInvalidSkipperRating):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}
