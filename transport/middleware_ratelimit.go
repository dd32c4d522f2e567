package transport

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	"github.com/muhammadheryan/el-rastro/constant"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterSweepEvery = 10 * time.Minute
	limiterIdleAfter  = 30 * time.Minute
)

// Writes issued while the user types; they only touch the client's own draft.
var unlimitedWrites = map[string]string{
	"/api/filters/draft": http.MethodPatch,
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles write requests per client with a token bucket each.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Limit(cfg.RPS),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

// Middleware limits POST, PUT, PATCH and DELETE requests, except draft filter edits.
// A non-positive rate disables it.
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.limit <= 0 || !isWrite(r.Method) || unlimitedWrites[r.URL.Path] == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			key := clientKey(r)
			if !rl.allow(key, time.Now()) {
				logger.Warn("[RateLimiter] rate limit exceeded", zap.String("client", key), zap.String("path", r.URL.Path))
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > limiterSweepEvery {
		for id, c := range rl.clients {
			if now.Sub(c.lastSeen) > limiterIdleAfter {
				delete(rl.clients, id)
			}
		}
		rl.lastSweep = now
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// clientKey identifies the caller: the user when logged in, then the client id, then the address.
func clientKey(r *http.Request) string {
	if session := utilsContext.GetSession(r.Context()); session != nil && session.UserID != "" {
		return "user:" + session.UserID
	}
	if clientID, ok := utilsContext.GetClientID(r.Context()); ok {
		return "client:" + clientID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}
