package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every failed request. Single-message
// failures go out as {"error": "..."}; accumulated validation failures as
// {"errors": ["...", ...]}.
type Response struct {
	Status int      `json:"-"`
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	abort(c, err, Response{Status: status, Error: msg})
}

// AbortWithMessages reports a list of validation messages in one response.
func AbortWithMessages(c *gin.Context, status int, err error, msgs []string) {
	if err == nil {
		panic("AbortWithMessages: err cannot be nil")
	}

	abort(c, err, Response{Status: status, Errors: msgs})
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
