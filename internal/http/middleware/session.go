package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/domain"
	"github.com/you/regsvc/internal/http/handlers"
)

// SessionMW gates admin routes behind the server-side session store
type SessionMW struct {
	sessionRepo domain.SessionRepository
}

// NewSessionMW creates new session middleware
func NewSessionMW(sessionRepo domain.SessionRepository) *SessionMW {
	return &SessionMW{sessionRepo: sessionRepo}
}

// RequireAdmin rejects requests without a valid admin session before
// any registration store access happens. Valid sessions get their TTL
// extended (sliding expiry).
func (mw *SessionMW) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(handlers.SessionCookie)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		session, err := mw.sessionRepo.FindByID(c.Request.Context(), sessionID)
		if err != nil || session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session invalid or expired"})
			c.Abort()
			return
		}

		if err := mw.sessionRepo.Touch(c.Request.Context(), sessionID); err != nil {
			// A failed extension is not fatal; the session stays valid
			// until its current expiry.
			log.Printf("SESSION_TOUCH_FAILED: session_id=%s error=%v", sessionID, err)
		}

		c.Set("session_id", session.ID)
		c.Set("admin_username", session.Username)

		c.Next()
	}
}
