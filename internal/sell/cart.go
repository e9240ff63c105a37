// Package sell holds the per-terminal sell-screen state: the cart, the
// customer selection, catalog search and the smart-order hand-off slot.
package sell

import (
	"petpos/internal/money"
)

// ItemKind is the single canonical tag for sellable items; its value is also
// the wire form the remote API expects.
type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindService ItemKind = "service"
)

func ParseItemKind(s string) (ItemKind, bool) {
	switch ItemKind(s) {
	case KindProduct, KindService:
		return ItemKind(s), true
	}
	return "", false
}

type LineItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice int64    `json:"unitPrice"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Kind      ItemKind `json:"kind"`
	Quantity  int      `json:"quantity"`
}

// Cart is an ordered list of line items keyed by (id, kind). The total is
// always derived from the current lines, never stored alongside them.
type Cart struct {
	lines []LineItem
}

func (c *Cart) find(id string, kind ItemKind) int {
	for i := range c.lines {
		if c.lines[i].ID == id && c.lines[i].Kind == kind {
			return i
		}
	}
	return -1
}

// AddItem adds one unit: an existing product line gains quantity 1, an
// existing service line is left alone (a service is sold at most once per
// sale), anything else is appended with quantity 1.
func (c *Cart) AddItem(item LineItem) {
	item.Quantity = 1
	c.Merge(item)
}

// Merge folds an item carrying its own quantity into the cart, using the same
// rules as AddItem. The smart-order drain comes through here.
func (c *Cart) Merge(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if i := c.find(item.ID, item.Kind); i >= 0 {
		if c.lines[i].Kind == KindProduct {
			c.lines[i].Quantity += item.Quantity
		}
		return
	}
	c.lines = append(c.lines, item)
}

// UpdateQuantity sets a product line's quantity, clamped to at least 1.
// Service lines are not editable.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	for i := range c.lines {
		if c.lines[i].ID != id || c.lines[i].Kind != KindProduct {
			continue
		}
		if quantity < 1 {
			quantity = 1
		}
		c.lines[i].Quantity = quantity
		return
	}
}

// RemoveItem deletes the line matching the composite (id, kind) key.
func (c *Cart) RemoveItem(id string, kind ItemKind) {
	if i := c.find(id, kind); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Lines returns a copy in display (insertion) order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

// DisplayTotal is the grouped form shown on screen and printed on the bill,
// e.g. "130,000".
func (c *Cart) DisplayTotal() string {
	return money.Format(c.Total())
}
