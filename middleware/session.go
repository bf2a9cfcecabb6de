package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/services"
)

const (
	SessionCookie = "tw_session"
	SessionHeader = "X-Session-ID"
	sessionKey    = "visitorSession"
)

// VisitorSession attaches the caller's storefront session, starting one
// when the cookie or header is missing or stale. The id is echoed back in
// both so API clients without cookies can keep it.
func VisitorSession(sessions *services.SessionService, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = c.GetHeader(SessionHeader)
		}

		sess, created := sessions.Resolve(id)
		if created || sess.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sess.ID, int(ttl.Seconds()), "/", "", secure, true)
		}
		c.Header(SessionHeader, sess.ID)

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Session returns the visitor session VisitorSession attached.
func Session(c *gin.Context) (*services.VisitorSession, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*services.VisitorSession)
	return sess, ok
}

func SessionID(c *gin.Context) string {
	if sess, ok := Session(c); ok {
		return sess.ID
	}
	return ""
}
