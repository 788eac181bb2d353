package middleware

import (
	"net/http"
	"sync"
	"time"

	"carflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles inquiry submission per client IP. State is
// in-memory: a restart resets the buckets, which is acceptable for an
// abuse guard.
type RateLimiter struct {
	clients map[string]*clientLimiter
	mu      sync.Mutex
	cfg     config.RateLimitConfig
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		cfg:     cfg,
	}
	go rl.cleanupClients()
	return rl
}

func (rl *RateLimiter) getClientLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[key]
	if !exists {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(rl.cfg.SubmitRate), rl.cfg.SubmitBurst),
		}
		rl.clients[key] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

func (rl *RateLimiter) cleanupClients() {
	for {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		for key, client := range rl.clients {
			if time.Since(client.lastSeen) > 30*time.Minute {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// LimitSubmit guards the inquiry creation endpoints.
func (rl *RateLimiter) LimitSubmit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getClientLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
