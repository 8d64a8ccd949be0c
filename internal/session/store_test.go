// ABOUTME: Tests for the session store and generation-token lifecycle
// ABOUTME: Covers state transitions, resets, and stale-result rejection
package session

import (
	"sync"
	"testing"
)

func TestStore_GetCreatesIdleSession(t *testing.T) {
	store := NewStore()

	sess := store.Get("user-1")
	if sess.ID != "user-1" {
		t.Errorf("ID = %q, want user-1", sess.ID)
	}
	if sess.State != StateIdle {
		t.Errorf("State = %q, want %q", sess.State, StateIdle)
	}
	if sess.Token == "" {
		t.Error("new session has no generation token")
	}

	// Same id returns the same session
	again := store.Get("user-1")
	if again.Token != sess.Token {
		t.Error("Get() created a new session for an existing id")
	}
}

func TestStore_Transition(t *testing.T) {
	store := NewStore()

	sess := store.Transition("user-1", StateAwaitGender)
	if sess.State != StateAwaitGender {
		t.Errorf("State = %q, want %q", sess.State, StateAwaitGender)
	}

	// Transition keeps the token
	before := store.Get("user-1").Token
	after := store.Transition("user-1", StateAwaitQuery).Token
	if before != after {
		t.Error("Transition() rotated the token")
	}
}

func TestStore_SetGenderAndProfile(t *testing.T) {
	store := NewStore()

	store.SetGender("user-1", "Women")
	store.SetProfile("user-1", "tall, prefers linen")

	sess := store.Get("user-1")
	if sess.Gender != "Women" {
		t.Errorf("Gender = %q, want Women", sess.Gender)
	}
	if sess.Profile != "tall, prefers linen" {
		t.Errorf("Profile = %q", sess.Profile)
	}
}

func TestStore_ResetRotatesToken(t *testing.T) {
	store := NewStore()

	store.SetGender("user-1", "Men")
	before := store.Transition("user-1", StateAwaitQuery)

	after := store.Reset("user-1")
	if after.State != StateIdle {
		t.Errorf("State after Reset = %q, want %q", after.State, StateIdle)
	}
	if after.Gender != "" || after.Profile != "" {
		t.Errorf("Reset left collected values: gender=%q profile=%q", after.Gender, after.Profile)
	}
	if after.Token == before.Token {
		t.Error("Reset() did not rotate the generation token")
	}
}

func TestStore_AcceptRejectsStaleToken(t *testing.T) {
	store := NewStore()

	sess := store.Get("user-1")
	if !store.Accept("user-1", sess.Token) {
		t.Error("current token rejected")
	}

	// A result computed before a reset carries the old token
	store.Reset("user-1")
	if store.Accept("user-1", sess.Token) {
		t.Error("stale token accepted after Reset")
	}

	fresh := store.Get("user-1")
	if !store.Accept("user-1", fresh.Token) {
		t.Error("fresh token rejected")
	}
}

func TestStore_AcceptUnknownSession(t *testing.T) {
	store := NewStore()
	if store.Accept("nobody", "any-token") {
		t.Error("Accept() true for a session that was never created")
	}
}

func TestStore_Remove(t *testing.T) {
	store := NewStore()

	sess := store.Get("user-1")
	store.Remove("user-1")

	if store.Accept("user-1", sess.Token) {
		t.Error("removed session still accepts results")
	}

	// Getting the id again starts a fresh session
	if store.Get("user-1").Token == sess.Token {
		t.Error("removed session was resurrected with the old token")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Transition("shared", StateAwaitQuery)
			store.SetGender("shared", "Women")
			_ = store.Get("shared")
		}()
	}
	wg.Wait()

	sess := store.Get("shared")
	if sess.State != StateAwaitQuery || sess.Gender != "Women" {
		t.Errorf("unexpected final session: %+v", sess)
	}
}
