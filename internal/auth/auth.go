package auth

import (
	"crypto/subtle"

	"github.com/serialtrack/serialtrack/internal/auth/password"
	"github.com/serialtrack/serialtrack/internal/config"
	"go.uber.org/fx"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleTech  Role = "tech"
)

// Admin may do everything a technician may.
func (r Role) CanAdmin() bool { return r == RoleAdmin }

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleTech }

// Authenticator verifies the two fixed accounts. The password hashes are
// computed once at construction from the injected configuration; nothing is
// read from ambient process state afterwards.
type Authenticator struct {
	adminUser string
	adminHash string
	techUser  string
	techHash  string
}

func NewAuthenticator(cfg config.Config) (*Authenticator, error) {
	adminHash, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	techHash, err := password.Hash(cfg.TechPassword)
	if err != nil {
		return nil, err
	}
	return &Authenticator{
		adminUser: cfg.AdminUser,
		adminHash: adminHash,
		techUser:  cfg.TechUser,
		techHash:  techHash,
	}, nil
}

// Authenticate returns the role for a credential pair, or false when neither
// account matches.
func (a *Authenticator) Authenticate(user, pw string) (Role, bool) {
	if subtle.ConstantTimeCompare([]byte(user), []byte(a.adminUser)) == 1 && password.Verify(pw, a.adminHash) {
		return RoleAdmin, true
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(a.techUser)) == 1 && password.Verify(pw, a.techHash) {
		return RoleTech, true
	}
	return "", false
}

var Module = fx.Module("auth",
	fx.Provide(NewAuthenticator),
)
