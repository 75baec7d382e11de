package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s0ph13d3f45w/landlord-ai/domain"
)

// SessionCookieName is the dashboard session cookie
const SessionCookieName = "session_id"

// LandlordIDKey is the gin context key holding the authenticated
// landlord's id
const LandlordIDKey = "landlord_id"

// SessionMW authenticates dashboard requests against the session store
type SessionMW struct {
	sessionRepo domain.SessionRepository
}

// NewSessionMW creates new session middleware
func NewSessionMW(sessionRepo domain.SessionRepository) *SessionMW {
	return &SessionMW{sessionRepo: sessionRepo}
}

// RequireSession aborts with 401 unless the request carries a valid,
// unexpired session cookie. On success the landlord id is stored in the
// gin context.
func (mw *SessionMW) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		session, err := mw.sessionRepo.FindByID(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			return
		}

		c.Set(LandlordIDKey, session.LandlordID)
		c.Next()
	}
}

// LandlordID extracts the authenticated landlord id from the gin
// context. The boolean is false when the middleware did not run.
func LandlordID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(LandlordIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
