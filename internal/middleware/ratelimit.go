package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/services"
)

// BookingRateLimit caps public booking submissions per client IP within
// a one-minute window. With Redis unavailable the form keeps working;
// dropping spam protection beats dropping bookings.
func BookingRateLimit(max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max <= 0 {
			c.Next()
			return
		}

		key := "ratelimit:bookings:" + c.ClientIP()
		exceeded, err := services.RateExceeded(c.Request.Context(), key, max, time.Minute)
		if err != nil {
			log.Printf("Rate limit check failed: %v", err)
			c.Next()
			return
		}
		if exceeded {
			c.JSON(429, gin.H{"ok": false, "error": "too many requests, try again shortly"})
			c.Abort()
			return
		}

		c.Next()
	}
}
