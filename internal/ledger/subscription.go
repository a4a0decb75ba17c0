package ledger

import (
	"sync"

	"bennyevents/internal/domain/models"
	"bennyevents/internal/utils"
)

// Scope restricts what a subscription observes: the whole ledger for the
// operator console, owner-only for a client session.
type Scope struct {
	OwnerID string
}

func ScopeAll() Scope { return Scope{} }

func ScopeOwner(ownerID string) Scope { return Scope{OwnerID: ownerID} }

// Lister is the read side of the booking store: an ordered query, scoped by
// owner when ownerID is non-empty, createdAt descending.
type Lister interface {
	List(ownerID string) ([]models.Booking, error)
}

// Manager opens live snapshot streams against the booking store. Every write
// accepted by the mutation gateway broadcasts on the hub; each open
// subscription then re-queries and emits the full current snapshot.
type Manager struct {
	Store Lister
	Hub   *Hub
}

// Subscription is one live snapshot stream. Snapshots() delivers complete
// ordered snapshots with single-slot coalescing: a consumer that lags only
// ever sees the newest state, never a backlog of stale ones. The channel
// closes on Close or on a store error; Err reports the terminal error, if
// any, once the channel is closed. No reconnect is attempted here — the
// consumer decides whether to reopen.
type Subscription struct {
	snapshots chan Snapshot
	done      chan struct{}
	closeOnce sync.Once
	release   func()

	errMu sync.Mutex
	err   error
}

// Open starts a subscription for the given scope. The initial snapshot is
// emitted before any change signal is observed, so a consumer always gets a
// first paint.
func (m *Manager) Open(scope Scope) *Subscription {
	signals, release := m.Hub.Register()
	s := &Subscription{
		snapshots: make(chan Snapshot, 1),
		done:      make(chan struct{}),
		release:   release,
	}
	go s.run(m.Store, scope, signals)
	return s
}

func (s *Subscription) Snapshots() <-chan Snapshot {
	return s.snapshots
}

// Err is meaningful once Snapshots() is closed. nil means a plain Close.
func (s *Subscription) Err() error {
	select {
	case <-s.done:
	default:
		return nil
	}
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// Close tears the subscription down. Idempotent; safe from any goroutine.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.release()
		close(s.done)
	})
}

func (s *Subscription) run(store Lister, scope Scope, signals <-chan struct{}) {
	defer close(s.snapshots)

	emit := func() bool {
		records, err := store.List(scope.OwnerID)
		if err != nil {
			utils.LogEvent("", "ledger", "subscription_error", err.Error())
			s.errMu.Lock()
			s.err = err
			s.errMu.Unlock()
			s.Close()
			return false
		}
		s.push(Snapshot(records))
		return true
	}

	if !emit() {
		return
	}

	for {
		select {
		case <-s.done:
			return
		case <-signals:
			if !emit() {
				return
			}
		}
	}
}

// push replaces any undelivered snapshot with the newer one.
func (s *Subscription) push(snap Snapshot) {
	for {
		select {
		case s.snapshots <- snap:
			return
		default:
		}
		select {
		case <-s.snapshots:
		default:
		}
	}
}
