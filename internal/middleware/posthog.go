package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/networth_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// trackedQueryParams are the query parameters worth recording with an event.
// Ids and dates are left out.
var trackedQueryParams = []string{"division", "includeExcluded", "limit"}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// API calls per owner with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventNameForRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"latency_ms":  time.Since(start).Milliseconds(),
		}
		for _, key := range trackedQueryParams {
			if v := c.Query(key); v != "" {
				props[key] = v
			}
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// EventNameForRoute turns a route template into an event name, e.g.
// "/api/v1/currencies/:currencyId/rateHistory" -> "api_v1_currencies_rateHistory".
func EventNameForRoute(fullPath string) string {
	segments := strings.Split(strings.Trim(fullPath, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "_")
}
