package handlers

import (
	"net/http"

	"koobings/utils"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler serves the latest dependency snapshot gathered by the
// background health monitor. Any dependency failing its last ping turns the
// answer into a 503 so load balancers stop routing here.
func NewHealthHandler(status func() utils.HealthStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := status()
		code := http.StatusOK
		// A zero CheckedAt means the monitor has not run yet; report OK
		// rather than flapping during boot.
		if !s.CheckedAt.IsZero() && !s.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, s)
	}
}
