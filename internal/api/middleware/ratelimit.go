package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/plant-tracker/server/internal/api/types"
	"github.com/plant-tracker/server/pkg/apperr"
	"github.com/plant-tracker/server/pkg/logger"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

func getIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit applies an IP-based token bucket limiter. State is scoped per
// instance; the GC goroutine lives as long as the process, matching the
// lifetime of a router-constructed middleware. Throttled requests get the
// same fixed error body as every other non-2xx response.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		visitors = map[string]*limiterEntry{}
	)
	gcTicker := time.NewTicker(5 * time.Minute)
	go func() {
		for range gcTicker.C {
			mu.Lock()
			for k, v := range visitors {
				if time.Since(v.last) > 10*time.Minute {
					delete(visitors, k)
				}
			}
			mu.Unlock()
		}
	}()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getIP(r)
			mu.Lock()
			le, ok := visitors[ip]
			if !ok {
				le = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				visitors[ip] = le
			}
			le.last = time.Now()
			allow := le.limiter.Allow()
			mu.Unlock()
			if !allow {
				logger.L().Warn("request throttled",
					zap.String("event", "error"),
					zap.String("code", string(apperr.CodeRateLimited)),
					zap.String("message", apperr.CodeRateLimited.Message()),
					zap.Int("statusCode", http.StatusTooManyRequests),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.String("remote", ip),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(types.ErrorBody{ErrorCode: types.FromCode(apperr.CodeRateLimited)})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
