package middleware

import (
	"github.com/gin-gonic/gin"
)

// getClientIP keys rate limiting and request logs. gin resolves
// X-Forwarded-For and X-Real-IP only when the direct peer is a trusted proxy
// (TRUSTED_PROXIES), so a client cannot spoof its way into a fresh bucket
// from outside.
func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
