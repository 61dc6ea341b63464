// Package session holds the client's view of the current authentication
// state. A single Store instance is shared by the services and the UI: the
// auth service writes to it, everything else reads snapshots or subscribes
// to change notifications.
package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/models"
)

// State is the session's authentication state.
type State int

const (
	// StateUnknown means the initial status probe has not completed yet.
	// Route decisions must not be made against an unknown session.
	StateUnknown State = iota
	// StateAnonymous means there is no authenticated user.
	StateAnonymous
	// StateAuthenticated means User identifies the signed-in account.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at one point in time. User is
// non-nil exactly when State is StateAuthenticated.
type Snapshot struct {
	State State
	User  *models.User
}

// Authenticated reports whether the snapshot carries a signed-in user.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// Store is the shared session holder. Reads never block writers: the current
// snapshot sits behind an atomic pointer and is replaced wholesale on every
// transition.
type Store struct {
	current atomic.Pointer[Snapshot]

	adapter adapter.ServerAdapter

	initOnce sync.Once
	initErr  error

	mu   sync.Mutex
	subs map[int]chan Snapshot
	next int

	logger *logger.Logger
}

// NewStore returns a Store in StateUnknown. Call Initialize before routing.
func NewStore(serverAdapter adapter.ServerAdapter, log *logger.Logger) *Store {
	s := &Store{
		adapter: serverAdapter,
		subs:    make(map[int]chan Snapshot),
		logger:  log,
	}
	s.current.Store(&Snapshot{State: StateUnknown})
	return s
}

// Initialize resolves the unknown state with a single status probe against
// the server. It runs the probe at most once for the life of the Store;
// subsequent calls return the first outcome. A probe failure resolves to
// anonymous so the client stays usable offline, and the error is returned
// for the caller to surface.
func (s *Store) Initialize(ctx context.Context) error {
	s.initOnce.Do(func() {
		status, err := s.adapter.AuthStatus(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("session probe failed, treating session as anonymous")
			s.publish(Snapshot{State: StateAnonymous})
			s.initErr = err
			return
		}

		if status.IsAuthenticated && status.User != nil {
			s.publish(Snapshot{State: StateAuthenticated, User: status.User})
		} else {
			s.publish(Snapshot{State: StateAnonymous})
		}
	})

	return s.initErr
}

// Refresh re-probes the server and replaces the current snapshot with the
// authoritative answer. Unlike Initialize it always performs the request.
// On probe failure the current snapshot is kept.
func (s *Store) Refresh(ctx context.Context) error {
	status, err := s.adapter.AuthStatus(ctx)
	if err != nil {
		return err
	}

	if status.IsAuthenticated && status.User != nil {
		s.publish(Snapshot{State: StateAuthenticated, User: status.User})
	} else {
		s.publish(Snapshot{State: StateAnonymous})
	}

	return nil
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	return *s.current.Load()
}

// SetIdentity records a successful sign-in. Only the auth service calls this.
func (s *Store) SetIdentity(user models.User) {
	u := user
	s.publish(Snapshot{State: StateAuthenticated, User: &u})
}

// Clear records a sign-out, dropping straight to anonymous.
func (s *Store) Clear() {
	s.publish(Snapshot{State: StateAnonymous})
}

// Subscribe registers an observer of session transitions. Every published
// snapshot is delivered on the returned channel; delivery is best-effort,
// a slow consumer misses intermediate snapshots rather than blocking the
// writer. The cancel func unregisters the observer and closes the channel.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (s *Store) publish(snap Snapshot) {
	s.current.Store(&snap)
	s.logger.Debug().Str("state", snap.State.String()).Msg("session transition")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// drop the stale value so the latest one always fits
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
