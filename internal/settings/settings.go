package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/brewpos/terminal/internal/session"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("setting not found")

// Namespaced keys for the terminal's durable state.
const (
	keyAuth  = "brewpos:auth"
	keyTheme = "brewpos:theme"

	SecretUsername      = "brewpos:secret:username"
	SecretPassword      = "brewpos:secret:password"
	SecretPIN           = "brewpos:secret:pin"
	SecretSupervisorKey = "brewpos:secret:supervisor-key"
)

// Theme is the persisted display preference.
type Theme struct {
	IsDark bool `json:"isDark"`
}

// Setting is one durable key-value row.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store is the terminal's local durable key-value storage, backed by a
// SQLite file next to the binary. Only theme, the auth snapshot, and the
// seeded secrets live here; carts and online orders deliberately reset on
// restart.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the settings database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Setting{Key: key, Value: value}).Error
}

func (s *Store) get(key string) (string, error) {
	var row Setting
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

// SaveAuth persists a session snapshot. Satisfies session.Persister.
func (s *Store) SaveAuth(snap session.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.set(keyAuth, string(raw))
}

// LoadAuth returns the persisted session snapshot, if any.
func (s *Store) LoadAuth() (session.Snapshot, bool, error) {
	raw, err := s.get(keyAuth)
	if errors.Is(err, ErrNotFound) {
		return session.Snapshot{}, false, nil
	}
	if err != nil {
		return session.Snapshot{}, false, err
	}
	var snap session.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return session.Snapshot{}, false, err
	}
	return snap, true, nil
}

// SaveTheme persists the display preference.
func (s *Store) SaveTheme(theme Theme) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return s.set(keyTheme, string(raw))
}

// LoadTheme returns the persisted theme, defaulting to light.
func (s *Store) LoadTheme() (Theme, error) {
	raw, err := s.get(keyTheme)
	if errors.Is(err, ErrNotFound) {
		return Theme{}, nil
	}
	if err != nil {
		return Theme{}, err
	}
	var theme Theme
	if err := json.Unmarshal([]byte(raw), &theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// SetSecret stores a seeded secret (bcrypt hashes, except the username).
func (s *Store) SetSecret(key, value string) error {
	return s.set(key, value)
}

// Secret returns a seeded secret by key.
func (s *Store) Secret(key string) (string, error) {
	return s.get(key)
}
