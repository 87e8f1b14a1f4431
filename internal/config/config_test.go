package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.IcecatLang != "de" {
		t.Fatalf("IcecatLang = %q", cfg.IcecatLang)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.AuthCookieSecure {
		t.Fatal("cookie must not be secure in development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ICECAT_LANG", "FR")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.IcecatLang != "fr" {
		t.Fatalf("language must be lowercased: %q", cfg.IcecatLang)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v", cfg.SessionTTL)
	}
	if !cfg.AuthCookieSecure {
		t.Fatal("production implies a secure cookie")
	}
}

func TestLoadLetterheadMissingFileFallsBack(t *testing.T) {
	lh, err := LoadLetterhead(Config{})
	if err != nil {
		t.Fatalf("LoadLetterhead: %v", err)
	}
	if lh.Title != "Seriennummernprotokoll" {
		t.Fatalf("Title = %q", lh.Title)
	}
	if len(lh.AddressLeft) == 0 || len(lh.AddressRight) == 0 {
		t.Fatal("placeholder address blocks missing")
	}
	if lh.LogoWidthMM <= 0 {
		t.Fatalf("LogoWidthMM = %v", lh.LogoWidthMM)
	}
}
