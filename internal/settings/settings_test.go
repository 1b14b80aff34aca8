package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/brewpos/terminal/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "terminal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestAuthRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.LoadAuth(); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v, want absent", ok, err)
	}

	want := session.Snapshot{IsAuthenticated: true, IsLocked: true}
	if err := s.SaveAuth(want); err != nil {
		t.Fatalf("SaveAuth: %v", err)
	}

	got, ok, err := s.LoadAuth()
	if err != nil || !ok {
		t.Fatalf("LoadAuth: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}

	// Overwrite wins.
	if err := s.SaveAuth(session.Snapshot{}); err != nil {
		t.Fatalf("SaveAuth overwrite: %v", err)
	}
	got, _, err = s.LoadAuth()
	if err != nil {
		t.Fatalf("LoadAuth: %v", err)
	}
	if got.IsAuthenticated || got.IsLocked {
		t.Errorf("overwrite not applied: %+v", got)
	}
}

func TestThemeDefaultsToLight(t *testing.T) {
	s := openTestStore(t)

	theme, err := s.LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.IsDark {
		t.Error("fresh store should default to light theme")
	}

	if err := s.SaveTheme(Theme{IsDark: true}); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	theme, err = s.LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if !theme.IsDark {
		t.Error("dark theme not persisted")
	}
}

func TestSecrets(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Secret(SecretPIN); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.SetSecret(SecretPIN, "hash"); err != nil {
		t.Fatalf("SetSecret: %v", err)
	}
	got, err := s.Secret(SecretPIN)
	if err != nil {
		t.Fatalf("Secret: %v", err)
	}
	if got != "hash" {
		t.Errorf("Secret = %q, want %q", got, "hash")
	}
}
