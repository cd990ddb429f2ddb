package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gravegrounds-backend/internal/domain/errors"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/ratelimit"
)

// RateLimit limita requisições por IP de origem.
// Se o limitador falhar a requisição segue, e a falha é registrada.
func RateLimit(limiter ratelimit.Limiter, logger ports.Logger, respond ErrorResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(math.Ceil(time.Until(result.ResetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			respond(c, errors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
