package middleware

import (
	"net"
	"strings"

	"koobings/config"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the caller's address for per-IP rate limiting.
// Forwarding headers are only honoured when the deployment declares a
// trusted proxy in front of the service; otherwise a caller could spoof its
// way into a fresh rate-limit bucket on every request.
func clientIP(c *gin.Context) string {
	if config.AppConfig.TrustProxyHeaders {
		// X-Forwarded-For accumulates one entry per hop; the first is the
		// originating client as seen by the edge proxy.
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			if first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); first != "" {
				return first
			}
		}
		if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
