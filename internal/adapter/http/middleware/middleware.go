package middleware

import (
	"net/http"
	"time"

	"cashu-wallet-service/pkg/apperror"
	"cashu-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderCallerPubkey identifies the caller for the allow-list check and
	// rate limiting.
	HeaderCallerPubkey = "X-Caller-Pubkey"
	HeaderRequestID    = "X-Request-ID"

	// Context keys
	CtxRequestID    = "request_id"
	CtxCallerPubkey = "caller_pubkey"
)

// RequestID assigns every request an id, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// PubkeyAuth enforces the caller allow-list. An empty allow-list admits
// everyone; otherwise the caller pubkey header must match an entry exactly.
func PubkeyAuth(allowed []string, log zerolog.Logger) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, pk := range allowed {
		allowedSet[pk] = struct{}{}
	}

	return func(c *gin.Context) {
		pubkey := c.GetHeader(HeaderCallerPubkey)
		if pubkey != "" {
			c.Set(CtxCallerPubkey, pubkey)
		}

		if len(allowedSet) == 0 {
			c.Next()
			return
		}

		if _, ok := allowedSet[pubkey]; !ok {
			log.Warn().Str("pubkey", pubkey).Str("path", c.Request.URL.Path).Msg("caller not on allow-list")
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// MaxBodySize limits request body size.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "TOOL_EXECUTION_ERROR",
					"message":    "TOOL_EXECUTION_ERROR: internal error",
				})
			}
		}()
		c.Next()
	}
}
