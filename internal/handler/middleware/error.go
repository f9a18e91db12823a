package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"storefront-partners/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server-side failures with their stack and renders any
// error a handler attached with c.Error without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			status := httperr.StatusOf(e.Err)
			if resp, ok := e.Meta.(httperr.Response); ok {
				status = resp.Status
			}
			if status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"status", status,
					"error", fmt.Sprintf("%+v", e.Err))
			}
		}

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
			httperr.Abort(c, last.Err)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"error", err,
					"path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
