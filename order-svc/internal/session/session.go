package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"bistro/order-svc/internal/engine"
)

var ErrSessionNotFound = errors.New("session not found")

// Identity is whatever the external identity provider told us about the
// customer. The order engine never reads it.
type Identity struct {
	UserID      string `json:"user_id,omitempty"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Session owns one order engine. Every engine access goes through Do, so a
// session behaves as a single logical owner even behind a concurrent server.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`

	mu          sync.Mutex
	engine      *engine.Engine
	lastSeen    time.Time
	checkingOut bool
}

func (s *Session) Do(fn func(e *engine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	fn(s.engine)
}

// BeginCheckout marks a payment as in flight for this session. It reports
// false while another checkout holds the mark.
func (s *Session) BeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkingOut {
		return false
	}
	s.checkingOut = true
	return true
}

func (s *Session) EndCheckout() {
	s.mu.Lock()
	s.checkingOut = false
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	pricing  engine.Pricing
	ttl      time.Duration
}

func NewRegistry(pricing engine.Pricing, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		pricing:  pricing,
		ttl:      ttl,
	}
}

func (r *Registry) Create(identity Identity) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Identity:  identity,
		CreatedAt: now.UTC(),
		engine:    engine.New(r.pricing),
		lastSeen:  now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Prune drops sessions idle for longer than the registry TTL and returns how
// many were removed.
func (r *Registry) Prune(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
