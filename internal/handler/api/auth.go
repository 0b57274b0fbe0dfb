package api

import (
	"errors"
	"net/http"

	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands  commands.AuthCommands
	memberQueries queries.MemberQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, memberQueries queries.MemberQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:  authCommands,
		memberQueries: memberQueries,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Member:      result.Member,
	})
}

// Logout is stateless; clients discard the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Member not authenticated",
		})
		return
	}

	view, err := h.memberQueries.GetByID(c.Request.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found",
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
