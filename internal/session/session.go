package session

import (
	"errors"
	"log"
	"sync"
	"time"
)

// Errors returned by the session store.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotLocked        = errors.New("terminal is not locked")
)

// Snapshot is the persisted shape of the session state.
type Snapshot struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsLocked        bool `json:"isLocked"`
}

// Persister stores the session snapshot across process restarts. A nil
// persister disables persistence.
type Persister interface {
	SaveAuth(Snapshot) error
}

// Store owns the terminal's authentication and lock state machine:
// LoggedOut, Active, and Locked. Credential and PIN verification happen
// before the transitions are invoked; the store enforces only the machine.
//
// The store also owns the idle watchdog: Touch resets it, and after the
// configured quiet period it locks an active session. Safe for concurrent use.
type Store struct {
	mu            sync.Mutex
	authenticated bool
	locked        bool

	persist     Persister
	idleTimeout time.Duration
	idleTimer   *time.Timer
}

// NewStore creates a logged-out session store. An idleTimeout of zero
// disables the watchdog.
func NewStore(persist Persister, idleTimeout time.Duration) *Store {
	return &Store{persist: persist, idleTimeout: idleTimeout}
}

// Restore loads a previously persisted snapshot, typically at boot.
// A restored active session gets a fresh idle watchdog.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = snap.IsAuthenticated
	s.locked = snap.IsLocked
	s.resetTimerLocked()
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{IsAuthenticated: s.authenticated, IsLocked: s.locked}
}

// Login moves to Active. Callers verify credentials first.
func (s *Store) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.locked = false
	s.resetTimerLocked()
	s.saveLocked()
}

// Logout moves to LoggedOut from any state. Logging out of a locked terminal
// is allowed; it is the escape hatch for signing in as a different user.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.locked = false
	s.stopTimerLocked()
	s.saveLocked()
}

// Lock suspends an active session. Locking an already-locked terminal is a
// no-op; locking a logged-out terminal is an error.
func (s *Store) Lock() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated {
		return ErrNotAuthenticated
	}
	if s.locked {
		return nil
	}
	s.locked = true
	s.stopTimerLocked()
	s.saveLocked()
	return nil
}

// Unlock resumes a locked session. PIN verification is the caller's job.
func (s *Store) Unlock() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.locked {
		return ErrNotLocked
	}
	s.locked = false
	s.resetTimerLocked()
	s.saveLocked()
	return nil
}

// Touch registers user activity, deferring the idle lock. Only an active
// session has a watchdog to defer.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticated && !s.locked {
		s.resetTimerLocked()
	}
}

// Close stops the idle watchdog.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *Store) resetTimerLocked() {
	s.stopTimerLocked()
	if s.idleTimeout <= 0 || !s.authenticated || s.locked {
		return
	}
	s.idleTimer = time.AfterFunc(s.idleTimeout, func() {
		if err := s.Lock(); err != nil && !errors.Is(err, ErrNotAuthenticated) {
			log.Printf("ERROR: idle lock: %v", err)
		}
	})
}

func (s *Store) stopTimerLocked() {
	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}
}

func (s *Store) saveLocked() {
	if s.persist == nil {
		return
	}
	snap := Snapshot{IsAuthenticated: s.authenticated, IsLocked: s.locked}
	if err := s.persist.SaveAuth(snap); err != nil {
		log.Printf("ERROR: persist session: %v", err)
	}
}
