package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// TooManyRequestsMessage is the body of a denied request.
const TooManyRequestsMessage = "Слишком много запросов. Попробуйте позже."

// RateLimiter allows perMinute requests per client IP, all of which may
// arrive as a burst. The budget refills evenly over the minute. Denied
// requests are answered by deny, or with a plain 429 when deny is nil.
func RateLimiter(perMinute int, deny echo.HandlerFunc) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if deny != nil {
				return deny(c)
			}
			return c.String(http.StatusTooManyRequests, TooManyRequestsMessage)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
