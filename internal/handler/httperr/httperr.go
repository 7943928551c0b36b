package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform error body. Error carries the status category,
// Message the human-readable reason shown to the user.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func categoryFor(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "Not Found"
	case status == http.StatusServiceUnavailable:
		return "Service Unavailable"
	case status >= http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Bad Request"
	}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: categoryFor(status), Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
