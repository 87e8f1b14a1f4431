package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/serialtrack/serialtrack/internal/auth"
)

const contextRoleKey = "role"

// RequireRole gates a route on the session role. Browser navigation is
// redirected to the login page with the intended destination preserved; API
// clients get a JSON 401/403.
func (s *Server) RequireRole(roles ...auth.Role) gin.HandlerFunc {
	allowed := make(map[auth.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			s.denyUnauthenticated(c)
			return
		}
		role, ok := s.sessions.Verify(token)
		if !ok {
			s.sessions.Clear(c)
			s.denyUnauthenticated(c)
			return
		}
		if !allowed[role] {
			AbortWithError(c, ErrForbidden)
			return
		}

		c.Set(contextRoleKey, role)
		c.Next()
	}
}

func (s *Server) denyUnauthenticated(c *gin.Context) {
	if wantsHTML(c) {
		next := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, "/login?next="+next)
		c.Abort()
		return
	}
	AbortWithError(c, ErrUnauthorized)
}

func wantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}

func roleFromContext(c *gin.Context) auth.Role {
	if v, ok := c.Get(contextRoleKey); ok {
		if role, ok := v.(auth.Role); ok {
			return role
		}
	}
	return ""
}
