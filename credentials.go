package freeconnect

import (
	"context"
	"sync"
)

// CredentialStore persists the bearer token and the cached user profile
// across restarts. It is the durable counterpart of Session.
//
// Contract:
//   - An unavailable medium is not an error: reads report absent values and
//     writes are silent no-ops. Callers branch on Available only when they
//     need to know whether persistence actually happens.
//   - Operations are idempotent. Saving an identical token or clearing an
//     absent entry changes nothing and never fails.
//   - Implementations perform no network calls.
type CredentialStore interface {
	// Available reports whether the durable medium can be used in this
	// execution context.
	Available() bool

	SaveToken(ctx context.Context, token string)
	Token(ctx context.Context) (string, bool)
	ClearToken(ctx context.Context)

	SaveUser(ctx context.Context, user *User)
	User(ctx context.Context) (*User, bool)
	ClearUser(ctx context.Context)
}

// MemoryStore is a process-local CredentialStore. Sessions held in it do not
// survive a restart; it backs tests and explicitly ephemeral logins.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *User
}

var _ CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Available() bool { return true }

func (m *MemoryStore) SaveToken(_ context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryStore) Token(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

func (m *MemoryStore) ClearToken(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

func (m *MemoryStore) SaveUser(_ context.Context, user *User) {
	if user == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *user
	m.user = &u
}

func (m *MemoryStore) User(_ context.Context) (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

func (m *MemoryStore) ClearUser(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
}

// UnavailableStore is the CredentialStore for execution contexts without
// durable storage (CI sandboxes, pre-render environments). Every read is
// absent and every write a no-op, so the rest of the client degrades to an
// anonymous session instead of failing.
type UnavailableStore struct{}

var _ CredentialStore = UnavailableStore{}

func (UnavailableStore) Available() bool                      { return false }
func (UnavailableStore) SaveToken(context.Context, string)    {}
func (UnavailableStore) Token(context.Context) (string, bool) { return "", false }
func (UnavailableStore) ClearToken(context.Context)           {}
func (UnavailableStore) SaveUser(context.Context, *User)      {}
func (UnavailableStore) User(context.Context) (*User, bool)   { return nil, false }
func (UnavailableStore) ClearUser(context.Context)            {}
