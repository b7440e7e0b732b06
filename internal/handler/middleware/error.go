package middleware

import (
	"log/slog"
	"net/http"

	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 16

// ErrorHandler renders the last public error a handler recorded without writing a body.
// Handlers that abort through httperr have already written, so this only catches stragglers.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		if len(c.Errors) > 0 {
			slog.Error("handler finished without a response",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"errors", c.Errors.String())
		}
		resp := httperr.Internal()
		c.JSON(resp.Status, resp)
	}
}

// CustomRecovery turns a panic into the standard 500 body and logs where it happened.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errs.Newf("panic: %v", r)
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", err.Error(),
					"stack", errs.ExtractStackLines(err, panicStackLines))

				resp := httperr.Internal()
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
