package sell

import (
	"sync"
	"sync/atomic"
)

// Session is one terminal's sell-screen state. Callers take the session lock
// around reads and mutations; the checkout processing flag lives outside the
// lock so the duplicate-submission guard never blocks.
type Session struct {
	sync.Mutex

	ID string

	Cart      Cart
	Customers CustomerSelector
	Bridge    Bridge

	Query    string
	Results  []LineItem
	BillPath string

	processing atomic.Bool
}

// BeginCheckout flips the processing flag; it reports false when a checkout
// is already running.
func (s *Session) BeginCheckout() bool {
	return s.processing.CompareAndSwap(false, true)
}

func (s *Session) EndCheckout() { s.processing.Store(false) }

func (s *Session) Processing() bool { return s.processing.Load() }

// Reset puts the sell screen back to its initial state after a completed
// sale. The bridge and the generated bill path survive the reset.
func (s *Session) Reset() {
	s.Cart.Clear()
	s.Customers.reset()
	s.Query = ""
	s.Results = nil
}

// Registry maps terminal session ids to their sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{ID: id}
		r.sessions[id] = s
	}
	return s
}
