package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serialtrack/serialtrack/internal/auth"
	"github.com/serialtrack/serialtrack/internal/clock"
	"github.com/serialtrack/serialtrack/internal/config"
)

const DefaultCookieName = "_sid"

type payload struct {
	ID        string    `json:"id"`
	Role      auth.Role `json:"role"`
	ExpiresAt time.Time `json:"exp"`
}

// Manager issues and verifies HMAC-signed role cookies. Sessions are
// stateless; the signature and expiry are the only validity checks.
type Manager struct {
	cookieName string
	secret     []byte
	ttl        time.Duration
	secure     bool
	clock      clock.Clock
}

func NewManager(cfg config.Config, clk clock.Clock) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secret:     []byte(cfg.SessionSecret),
		ttl:        cfg.SessionTTL,
		secure:     cfg.AuthCookieSecure,
		clock:      clk,
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue creates a signed token for the role and returns it with its expiry.
func (m *Manager) Issue(role auth.Role) (string, time.Time, error) {
	expiresAt := m.clock.Now().Add(m.ttl)
	body, err := json.Marshal(payload{
		ID:        uuid.NewString(),
		Role:      role,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", time.Time{}, err
	}

	encoded := base64.RawURLEncoding.EncodeToString(body)
	return encoded + "." + m.sign(encoded), expiresAt, nil
}

// Verify checks the token signature and expiry and returns the embedded role.
func (m *Manager) Verify(token string) (auth.Role, bool) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(m.sign(encoded)), []byte(sig)) {
		return "", false
	}

	body, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return "", false
	}
	if !p.Role.Valid() || m.clock.Now().After(p.ExpiresAt) {
		return "", false
	}
	return p.Role, true
}

func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return "", false
	}
	if strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

func (m *Manager) Set(c *gin.Context, value string, expiresAt time.Time) {
	maxAge := int(expiresAt.Sub(m.clock.Now()).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, maxAge, "/", "", m.secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

func (m *Manager) sign(encoded string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
