package auth

import (
	"testing"

	"github.com/serialtrack/serialtrack/internal/config"
)

func testAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(config.Config{
		AdminUser:     "admin",
		AdminPassword: "admin-secret",
		TechUser:      "techniker",
		TechPassword:  "tech-secret",
	})
	if err != nil {
		t.Fatalf("NewAuthenticator: %v", err)
	}
	return a
}

func TestAuthenticate(t *testing.T) {
	a := testAuthenticator(t)

	role, ok := a.Authenticate("admin", "admin-secret")
	if !ok || role != RoleAdmin {
		t.Fatalf("admin login: role = %q, ok = %v", role, ok)
	}

	role, ok = a.Authenticate("techniker", "tech-secret")
	if !ok || role != RoleTech {
		t.Fatalf("tech login: role = %q, ok = %v", role, ok)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	a := testAuthenticator(t)

	cases := []struct{ user, pw string }{
		{"admin", "wrong"},
		{"techniker", "admin-secret"}, // right password, wrong account
		{"nobody", "admin-secret"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, ok := a.Authenticate(tc.user, tc.pw); ok {
			t.Errorf("Authenticate(%q, %q) accepted", tc.user, tc.pw)
		}
	}
}

func TestRole(t *testing.T) {
	if !RoleAdmin.CanAdmin() || RoleTech.CanAdmin() {
		t.Fatal("admin gate broken")
	}
	if !RoleAdmin.Valid() || !RoleTech.Valid() || Role("guest").Valid() {
		t.Fatal("role validity broken")
	}
}
