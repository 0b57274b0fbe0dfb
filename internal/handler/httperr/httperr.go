package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error envelope the API emits. The message is
// the contract; rejection reasons surface verbatim.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError records the original error on the context for the
// logging middleware and writes the public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
