package core

import (
	"errors"
	"testing"
)

func TestSessionManagerOpenSeedsHistory(t *testing.T) {
	m := NewSessionManager()
	session := m.Open("doc-1", "user-1", "initial content")

	if session.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if session.DocumentID != "doc-1" || session.UserID != "user-1" {
		t.Errorf("unexpected session identity: %+v", session)
	}
	if session.History.Current() != "initial content" {
		t.Errorf("history seed = %q, want initial content", session.History.Current())
	}
}

func TestSessionManagerPushUndoRedo(t *testing.T) {
	m := NewSessionManager()
	session := m.Open("doc-1", "user-1", "v0")

	if _, err := m.Push(session.ID, "user-1", "v1"); err != nil {
		t.Fatalf("Push returned error: %v", err)
	}
	current, err := m.Push(session.ID, "user-1", "v2")
	if err != nil {
		t.Fatalf("Push returned error: %v", err)
	}
	if current != "v2" {
		t.Errorf("current after pushes = %q, want v2", current)
	}

	if got, _ := m.Undo(session.ID, "user-1"); got != "v1" {
		t.Errorf("Undo = %q, want v1", got)
	}
	if got, _ := m.Redo(session.ID, "user-1"); got != "v2" {
		t.Errorf("Redo = %q, want v2", got)
	}
}

func TestSessionManagerUnknownSession(t *testing.T) {
	m := NewSessionManager()
	if _, err := m.Undo("no-such-session", "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestSessionManagerForeignUserSessionHidden(t *testing.T) {
	m := NewSessionManager()
	session := m.Open("doc-1", "user-1", "v0")

	// Another principal probing a valid session id must get not-found,
	// not forbidden.
	if _, err := m.Push(session.ID, "user-2", "v1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestSessionManagerClose(t *testing.T) {
	m := NewSessionManager()
	session := m.Open("doc-1", "user-1", "v0")

	if err := m.Close(session.ID, "user-1"); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := m.Push(session.ID, "user-1", "v1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("closed session should be gone, got %v", err)
	}
	if err := m.Close(session.ID, "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("double close should be not-found, got %v", err)
	}
}
