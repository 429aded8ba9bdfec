package middleware

import (
	"net/http"
	"repairhub/pkg"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// RequestLogging logs one line per request and propagates X-Request-ID.
func RequestLogging(logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = strconv.FormatInt(start.UnixNano(), 36)
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		if actor, ok := ActorFrom(c); ok {
			ev = ev.Str("actor_id", actor.ID).Str("actor_role", string(actor.Role))
		}
		ev.Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("[http] request completed")
	}
}

// Recovery turns a panic into a 500 response.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "http").Logger()
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("[http] recovered from panic")
		abort(c, errInternal)
	})
}
