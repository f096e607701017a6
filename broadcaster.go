package freeconnect

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SessionBroadcaster holds the current Session and pushes every change to
// its subscribers, so independent consumers (prompt, navigation, guards)
// observe login and logout without polling.
//
// Observers run synchronously under the broadcaster lock: Set does not
// return until every subscriber saw the new value, and updates are delivered
// in the order they were applied. An observer must not call Set, Subscribe,
// or Unsubscribe from inside its callback.
type SessionBroadcaster struct {
	mu          sync.Mutex
	current     Session
	subscribers map[uuid.UUID]func(Session)
	order       []uuid.UUID
}

// Subscription identifies a registered observer. Unsubscribing releases the
// broadcaster's reference to the callback.
type Subscription struct {
	id          uuid.UUID
	broadcaster *SessionBroadcaster
}

// NewSessionBroadcaster hydrates the initial Session from the given store.
// An empty or unavailable store yields an anonymous session.
func NewSessionBroadcaster(ctx context.Context, store CredentialStore) *SessionBroadcaster {
	b := &SessionBroadcaster{
		subscribers: map[uuid.UUID]func(Session){},
	}
	if store != nil && store.Available() {
		token, _ := store.Token(ctx)
		user, _ := store.User(ctx)
		b.current = Session{Token: token, User: user}
	}
	return b
}

// Current returns the latest known Session without blocking.
func (b *SessionBroadcaster) Current() Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe registers fn and immediately replays the current Session to it.
// Afterwards fn receives every Set value, in order, until Unsubscribe.
func (b *SessionBroadcaster) Subscribe(fn func(Session)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	b.subscribers[id] = fn
	b.order = append(b.order, id)

	fn(b.current)

	return &Subscription{id: id, broadcaster: b}
}

// Set swaps the current Session and notifies all subscribers before
// returning. Only the Authenticator should call this.
func (b *SessionBroadcaster) Set(session Session) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = session
	for _, id := range b.order {
		if fn, ok := b.subscribers[id]; ok {
			fn(session)
		}
	}
}

// Unsubscribe stops delivery and drops the observer reference. Safe to call
// more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.broadcaster == nil {
		return
	}
	b := s.broadcaster
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[s.id]; !ok {
		return
	}
	delete(b.subscribers, s.id)
	for i, id := range b.order {
		if id == s.id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}
