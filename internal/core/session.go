package core

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when an editing session id is unknown,
// which includes sessions lost to a server restart.
var ErrSessionNotFound = errors.New("editing session not found")

// EditSession holds the local undo/redo buffer for one client editing a
// document. Sessions are in-memory only and are never persisted.
type EditSession struct {
	ID         string
	DocumentID string
	UserID     string
	History    *EditHistory
	CreatedAt  time.Time
}

// SessionManager owns the live editing sessions. Access is serialized with a
// mutex; each session's history is single-client by contract, the lock only
// protects the map itself plus the history against misbehaving clients.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*EditSession
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*EditSession)}
}

// Open creates a session for a document, seeding the history with the
// document's loaded content snapshot.
func (m *SessionManager) Open(documentID, userID, content string) *EditSession {
	session := &EditSession{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		UserID:     userID,
		History:    NewEditHistory(content),
		CreatedAt:  time.Now().UTC(),
	}
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session
}

// Push appends a snapshot to the session's history and returns the new
// current snapshot.
func (m *SessionManager) Push(sessionID, userID, snapshot string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.lookup(sessionID, userID)
	if err != nil {
		return "", err
	}
	session.History.Push(snapshot)
	return session.History.Current(), nil
}

// Undo steps the session's history back and returns the current snapshot.
func (m *SessionManager) Undo(sessionID, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.lookup(sessionID, userID)
	if err != nil {
		return "", err
	}
	return session.History.Undo(), nil
}

// Redo steps the session's history forward and returns the current snapshot.
func (m *SessionManager) Redo(sessionID, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.lookup(sessionID, userID)
	if err != nil {
		return "", err
	}
	return session.History.Redo(), nil
}

// Close discards a session and its history.
func (m *SessionManager) Close(sessionID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup(sessionID, userID); err != nil {
		return err
	}
	delete(m.sessions, sessionID)
	return nil
}

// lookup must be called with the mutex held. A session opened by another
// user is reported as not found rather than forbidden, so session ids do
// not leak across principals.
func (m *SessionManager) lookup(sessionID, userID string) (*EditSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, fmt.Errorf("%w: id '%s'", ErrSessionNotFound, sessionID)
	}
	return session, nil
}
