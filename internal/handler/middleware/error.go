package middleware

import (
	"log/slog"
	"net/http"

	"ramillete/internal/handler/httperr"
	"ramillete/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const errorStackMaxLines = 10

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					if resp.Status >= http.StatusInternalServerError {
						slog.Error("request failed",
							"request_id", GetRequestID(c),
							"status", resp.Status,
							"path", c.Request.URL.Path,
							"stack", errs.ExtractStackLines(err.Err, errorStackMaxLines),
						)
					}
					// Public: Meta ⇒ Return as is (unless already written)
					if !c.Writer.Written() {
						c.JSON(resp.Status, resp)
					}
					return
				}
			}
		}
		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{
			Status:  http.StatusInternalServerError,
			Error:   "Internal Server Error",
			Message: "Internal server error",
		})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Status:  http.StatusInternalServerError,
					Error:   "Internal Server Error",
					Message: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
