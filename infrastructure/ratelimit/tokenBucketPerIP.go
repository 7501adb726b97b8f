package ratelimit

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

// TokenBucketPerIP limits each client IP to RATE_LIMIT_RPS requests per
// second (default 25).
func TokenBucketPerIP() gin.HandlerFunc {
	message := map[string]any{
		"message": "You are going too fast! You have been ratelimited.",
	}
	jsonMessage, _ := json.Marshal(message)

	max := 25.0
	if parsed, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && parsed > 0 {
		max = parsed
	}

	tlbthLimiter := tollbooth.NewLimiter(max, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Minute * 1,
	})
	tlbthLimiter.SetMessageContentType("application/json")
	tlbthLimiter.SetMessage(string(jsonMessage))

	return tollbooth_gin.LimitHandler(tlbthLimiter)
}
