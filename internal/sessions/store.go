// Package sessions holds the in-memory per-session storefront state: one
// cart and one variant-selection per browsing session. Nothing here survives
// a process restart; cross-session persistence is explicitly out of scope.
package sessions

import (
	"sync"

	"github.com/google/uuid"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// Session is the state owned by one browsing session. Cart operations are
// synchronous with respect to each other; Do serializes access so concurrent
// HTTP requests for the same session cannot interleave mutations.
type Session struct {
	id        string
	mu        sync.Mutex
	cart      *cartdomain.Cart
	selection *catalogdomain.VariantSelection
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Do runs fn with exclusive access to the session's cart and selection.
func (s *Session) Do(fn func(cart *cartdomain.Cart, selection *catalogdomain.VariantSelection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart, s.selection)
}

// Store is an in-memory session registry, safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	observers []cartdomain.Observer
}

// NewStore creates an empty session store. Any observers given here are
// subscribed to every cart the store creates.
func NewStore(observers ...cartdomain.Observer) *Store {
	return &Store{
		sessions:  make(map[string]*Session),
		observers: observers,
	}
}

// NewSessionID mints a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// GetOrCreate returns the session with the given id, creating an empty one
// (empty cart, no selection) on first sight.
func (st *Store) GetOrCreate(sessionID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[sessionID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[sessionID]; ok {
		return s
	}
	cart := cartdomain.New()
	for _, o := range st.observers {
		cart.Subscribe(o)
	}
	s = &Session{
		id:        sessionID,
		cart:      cart,
		selection: catalogdomain.NewVariantSelection(),
	}
	st.sessions[sessionID] = s
	return s
}

// Remove tears a session down at session end.
func (st *Store) Remove(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
