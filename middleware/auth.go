package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"event-feedback-service/models"
	"event-feedback-service/services"
	"event-feedback-service/services/container"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "feedback_session"

// Context keys set by the Identity middleware
const (
	ContextUserKey    = "currentUser"
	ContextSessionKey = "sessionID"
)

var (
	sessions *services.SessionService
	users    *services.UserService
)

// InitAuthMiddleware wires the middleware to the service container
func InitAuthMiddleware(c *container.ServiceContainer) {
	sessions = c.GetService("session").(*services.SessionService)
	users = c.GetService("user").(*services.UserService)
}

// Identity resolves the session cookie into the current user on every
// request. Anonymous and broken sessions pass through unauthenticated.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err == nil && cookie != "" {
			if sid, data, err := sessions.Resolve(cookie); err == nil {
				if user, err := users.GetByID(data.UserID); err == nil {
					c.Set(ContextUserKey, user)
					c.Set(ContextSessionKey, sid)
				}
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// SessionID returns the current session id, or ""
func SessionID(c *gin.Context) string {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return ""
	}
	sid, _ := value.(string)
	return sid
}

// LoginRequired redirects anonymous requests to the login page, keeping
// the originally requested path for the post-login redirect.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			redirectToLogin(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 403 when the current user lacks the role the
// route declares. Anonymous requests are sent to the login page instead.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			redirectToLogin(c)
			c.Abort()
			return
		}
		if !user.HasRole(role) {
			// Rendered here rather than through the views package, which
			// imports this one for the context getters. The render context
			// is assembled the same way.
			data := gin.H{"Title": "Forbidden", "CurrentUser": user}
			if sid := SessionID(c); sid != "" {
				if flashes, err := sessions.PopFlashes(sid); err == nil && len(flashes) > 0 {
					data["Flashes"] = flashes
				}
			}
			c.HTML(http.StatusForbidden, "403.html", data)
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+next)
}

// SafeNextPath keeps post-login redirects on this origin: only rooted
// relative paths are honored, anything else falls back to the index.
func SafeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}
