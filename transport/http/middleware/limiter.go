package middleware

import (
	"net/http"
	"strconv"
	"tatzy/shared"
	"tatzy/shared/constant"
	"tatzy/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit is a fixed window limiter keyed by client IP. The window starts at
// the first request and is never extended by later ones.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, shared.ClientIP(r))

			count, ttl, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				// limiter outages must not take intake down
				log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to increment rate limit counter")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > int64(maxReqs) {
				retryAfter := int(ttl.Seconds())
				if retryAfter <= 0 {
					retryAfter = windowSecs
				}

				w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(retryAfter))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
