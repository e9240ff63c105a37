package sell

import "sync"

// Bridge hands structured smart-order items to the sell screen. It is a
// single-slot, single-consumer exchange: Drain returns the pending items and
// empties the slot, so re-entering the screen never applies them twice.
type Bridge struct {
	mu      sync.Mutex
	pending []LineItem
}

func (b *Bridge) Set(items []LineItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = items
}

func (b *Bridge) Drain() []LineItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := b.pending
	b.pending = nil
	return items
}
