package middleware

import (
	"net/http"
	"repairhub/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMIT_EXCEEDED", "Too many requests. Please try again later.", http.StatusTooManyRequests)

type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter.Allow() {
			abort(c, errRateLimited)
			return
		}
		c.Next()
	}
}
