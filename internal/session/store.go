// ABOUTME: Durable single-session store backing console authentication
// ABOUTME: Mirrors the in-memory session to a JSON state file on every mutation

package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// StateFileName is the fixed name of the session state file. The absence of
// the file means "no session", never an anonymous default.
const StateFileName = "diet_app_user.json"

// Store holds the single authoritative session for this console process.
// The in-memory value and the state file are kept identical after every
// mutation. Safe for concurrent use.
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	ready   bool
	current *Session
}

// New creates a Store backed by StateFileName inside stateDir. The state
// file is not read until Init is called; until then Ready reports false.
func New(stateDir string) *Store {
	return &Store{
		path:   filepath.Join(stateDir, StateFileName),
		logger: slog.Default().With("component", "session"),
	}
}

// Init performs the one-time read of the state file. A missing, unreadable,
// or corrupt file yields no session rather than an error: the store fails
// closed. Calling Init again is a no-op.
func (s *Store) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return
	}
	s.current = readStateFile(s.path, s.logger)
	s.ready = true
}

// Ready reports whether the initial state-file read has happened.
// Session-gated rendering must wait for Ready to avoid acting on the
// transient initializing state.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Current returns the active session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// UserID returns the active session's id in string form, for use as the
// outbound identity header. Absent when there is no session.
func (s *Store) UserID() (string, bool) {
	sess, ok := s.Current()
	if !ok {
		return "", false
	}
	return strconv.FormatInt(sess.ID, 10), true
}

// Login stores the given session in memory and in the state file. A second
// Login overwrites the previous session. The in-memory value is only
// replaced once the file write succeeds, keeping the two identical.
func (s *Store) Login(sess Session) error {
	if sess.ID == 0 {
		return fmt.Errorf("session id is required")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	s.current = &sess
	s.logger.Info("session stored", "user_id", sess.ID)
	return nil
}

// Logout clears the session from memory and removes the state file.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}

	s.current = nil
	s.logger.Info("session cleared")
	return nil
}

// readStateFile loads a session from disk. Every failure mode parses as
// "no session": the caller can never observe an error or a partial identity.
func readStateFile(path string, logger *slog.Logger) *Session {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read session file, treating as logged out", "error", err)
		}
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logger.Warn("session file is not valid JSON, treating as logged out", "error", err)
		return nil
	}

	// A stored object without a numeric id is not a usable identity.
	if sess.ID == 0 {
		return nil
	}
	return &sess
}
