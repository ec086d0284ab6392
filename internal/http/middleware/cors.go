package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware allowing the configured origin. Outside
// production mode, or when no origin is configured, the caller's own
// origin is echoed back: a literal "*" cannot be combined with
// Allow-Credentials, which the admin session cookie needs.
func CORS(allowedOrigin string, production bool) gin.HandlerFunc {
	permissive := !production || allowedOrigin == ""

	return func(c *gin.Context) {
		origin := allowedOrigin
		if permissive {
			origin = c.Request.Header.Get("Origin")
			if origin == "" {
				origin = "*"
			}
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
