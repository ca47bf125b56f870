package middleware

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/config"
)

// RateLimit returns middleware that applies a token bucket per client IP.
// Buckets live in an LRU bounded by cfg.MaxClients, so an evicted client
// starts again with a full bucket. Rejected requests get a 429 problem
// response with a Retry-After header.
//
// The client IP is taken from RemoteAddr; forwarding headers are not trusted.
func RateLimit(cfg config.RateLimitConfig) (func(http.Handler) http.Handler, error) {
	if cfg.RequestsPerSecond <= 0 || cfg.Burst < 1 {
		return nil, errors.New("rate limit needs positive requests_per_second and burst")
	}
	buckets, err := lru.New[string, *rate.Limiter](cfg.MaxClients)
	if err != nil {
		return nil, err
	}

	limiterFor := func(ip string) *rate.Limiter {
		if lim, ok := buckets.Get(ip); ok {
			return lim
		}
		lim := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
		if prev, ok, _ := buckets.PeekOrAdd(ip, lim); ok {
			return prev
		}
		return lim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiterFor(clientIP(r)).Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				dto.WriteErrorResponse(w, r, domain.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
