package ledger

import (
	"errors"
	"sync"
	"testing"
	"time"

	"bennyevents/internal/domain/models"
)

type fakeStore struct {
	mu      sync.Mutex
	records []models.Booking
	err     error
}

func (f *fakeStore) List(ownerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if ownerID == "" {
		return append([]models.Booking{}, f.records...), nil
	}
	out := []models.Booking{}
	for _, b := range f.records {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) set(records []models.Booking) {
	f.mu.Lock()
	f.records = records
	f.mu.Unlock()
}

func (f *fakeStore) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func waitSnapshot(t *testing.T, sub *Subscription) (Snapshot, bool) {
	t.Helper()
	select {
	case snap, ok := <-sub.Snapshots():
		return snap, ok
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for snapshot")
		return nil, false
	}
}

func TestSubscriptionEmitsInitialSnapshot(t *testing.T) {
	store := &fakeStore{records: []models.Booking{{ID: "a"}, {ID: "b"}}}
	m := &Manager{Store: store, Hub: NewHub()}

	sub := m.Open(ScopeAll())
	defer sub.Close()

	snap, ok := waitSnapshot(t, sub)
	if !ok {
		t.Fatalf("stream closed before first paint")
	}
	if len(snap) != 2 {
		t.Fatalf("initial snapshot = %d records, want 2", len(snap))
	}
}

func TestSubscriptionReemitsOnBroadcast(t *testing.T) {
	store := &fakeStore{records: []models.Booking{{ID: "a"}}}
	hub := NewHub()
	m := &Manager{Store: store, Hub: hub}

	sub := m.Open(ScopeAll())
	defer sub.Close()

	if snap, _ := waitSnapshot(t, sub); len(snap) != 1 {
		t.Fatalf("initial snapshot wrong")
	}

	store.set([]models.Booking{{ID: "a"}, {ID: "b"}})
	hub.Broadcast()

	snap, ok := waitSnapshot(t, sub)
	if !ok {
		t.Fatalf("stream closed unexpectedly")
	}
	if len(snap) != 2 {
		t.Fatalf("re-emitted snapshot = %d records, want the complete current list", len(snap))
	}
}

func TestSubscriptionCoalescesToNewest(t *testing.T) {
	store := &fakeStore{records: []models.Booking{{ID: "v1"}}}
	hub := NewHub()
	m := &Manager{Store: store, Hub: hub}

	sub := m.Open(ScopeAll())
	defer sub.Close()

	// do not read yet: let several updates pile up
	store.set([]models.Booking{{ID: "v2"}})
	hub.Broadcast()
	store.set([]models.Booking{{ID: "v3"}})
	hub.Broadcast()

	// every emission is authoritative, so the consumer only needs to
	// converge on the newest state
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-sub.Snapshots():
			if !ok {
				t.Fatalf("stream closed before converging")
			}
			if len(snap) == 1 && snap[0].ID == "v3" {
				return
			}
		case <-deadline:
			t.Fatalf("never observed newest snapshot")
		}
	}
}

func TestSubscriptionOwnerScope(t *testing.T) {
	store := &fakeStore{records: []models.Booking{
		{ID: "a", OwnerID: "client@benny.com"},
		{ID: "b", OwnerID: "other@benny.com"},
	}}
	m := &Manager{Store: store, Hub: NewHub()}

	sub := m.Open(ScopeOwner("client@benny.com"))
	defer sub.Close()

	snap, _ := waitSnapshot(t, sub)
	if len(snap) != 1 || snap[0].ID != "a" {
		t.Fatalf("owner scope leaked records: %+v", snap)
	}
}

func TestSubscriptionCloseIdempotent(t *testing.T) {
	store := &fakeStore{}
	m := &Manager{Store: store, Hub: NewHub()}

	sub := m.Open(ScopeAll())
	waitSnapshot(t, sub)

	sub.Close()
	sub.Close()
	sub.Close()

	select {
	case _, ok := <-sub.Snapshots():
		if ok {
			t.Fatalf("expected closed stream after Close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("stream not closed after Close")
	}
	if sub.Err() != nil {
		t.Fatalf("plain Close should leave no terminal error, got %v", sub.Err())
	}
}

func TestSubscriptionStoreErrorIsTerminal(t *testing.T) {
	store := &fakeStore{records: []models.Booking{{ID: "a"}}}
	hub := NewHub()
	m := &Manager{Store: store, Hub: hub}

	sub := m.Open(ScopeAll())
	defer sub.Close()
	waitSnapshot(t, sub)

	store.fail(errors.New("transport down"))
	hub.Broadcast()

	select {
	case _, ok := <-sub.Snapshots():
		if ok {
			t.Fatalf("expected terminal close, got another snapshot")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("stream not closed after store error")
	}
	if sub.Err() == nil {
		t.Fatalf("terminal error should be surfaced to the consumer")
	}
}
