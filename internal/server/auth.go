package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	User     string `json:"user" form:"user"`
	Password string `json:"pw" form:"pw"`
}

// LoginPage serves the frontend entry when a build is deployed; without one
// it still answers 200 so the unauthenticated redirect never dead-ends.
func (s *Server) LoginPage(c *gin.Context) {
	if _, err := os.Stat("./public/index.html"); err == nil {
		c.File("./public/index.html")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": false, "login": true})
}

// Login checks the credential pair against the two fixed accounts and sets
// the session cookie. Wrong credentials are a form error, not a lockout.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	role, ok := s.auth.Authenticate(strings.TrimSpace(req.User), req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Falsche Zugangsdaten!"})
		return
	}

	token, expiresAt, err := s.sessions.Issue(role)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.sessions.Set(c, token, expiresAt)

	next := strings.TrimSpace(c.Query("next"))
	if !isLocalPath(next) {
		if role.CanAdmin() {
			next = "/admin"
		} else {
			next = "/"
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "role": role, "next": next})
}

// isLocalPath accepts only same-site redirect targets. Browsers treat "//host"
// and "/\host" as protocol-relative URLs, so a single leading slash is
// required and a second (back)slash rejected.
func isLocalPath(next string) bool {
	if !strings.HasPrefix(next, "/") {
		return false
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return false
	}
	return true
}

func (s *Server) Logout(c *gin.Context) {
	s.sessions.Clear(c)
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
