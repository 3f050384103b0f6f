package translation

import (
	"context"
	"testing"
	"time"
)

func TestSessions_Get(t *testing.T) {
	store := NewSessions(NewMockService(0, discardLogger()), Spanish, discardLogger())

	id, sess := store.Get("")
	if id == "" {
		t.Fatal("Get(\"\") returned empty id")
	}
	if sess.State().Language != Spanish {
		t.Errorf("new session language = %q, want %q", sess.State().Language, Spanish)
	}

	sameID, same := store.Get(id)
	if sameID != id || same != sess {
		t.Error("Get(id) did not return the existing session")
	}

	otherID, other := store.Get("unknown")
	if otherID == "unknown" || other == sess {
		t.Error("Get(unknown) should create a fresh session under a new id")
	}

	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
}

func TestSessions_Prune(t *testing.T) {
	svc := newBlockingService("ok", nil)
	store := NewSessions(svc, German, discardLogger())

	store.Get("")
	_, busy := store.Get("")

	done, err := busy.Start(context.Background(), "hello", German)
	if err != nil {
		t.Fatalf("Start() unexpected error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if removed := store.Prune(time.Millisecond); removed != 1 {
		t.Errorf("Prune() removed %d, want 1", removed)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (in-flight session kept)", store.Len())
	}

	close(svc.release)
	waitDone(t, done)
}
