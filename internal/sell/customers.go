package sell

import (
	"context"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
)

type CustomerSource interface {
	ListCustomers(ctx context.Context) ([]catalog.Customer, error)
}

// CustomerSelector holds the once-per-session customer list and the customer
// the current sale is for.
type CustomerSelector struct {
	customers []catalog.Customer
	selected  *catalog.Customer
	prompt    bool
	loaded    bool
}

// Load fetches the customer list on first call. A failure leaves the list
// empty and is only logged; the checkout precondition catches the fallout.
func (cs *CustomerSelector) Load(ctx context.Context, src CustomerSource) {
	if cs.loaded {
		return
	}
	list, err := src.ListCustomers(ctx)
	if err != nil {
		applog.Warn(nil, "sell.customers.load", map[string]any{"err": err.Error()})
		return
	}
	cs.customers = list
	cs.loaded = true
}

func (cs *CustomerSelector) Customers() []catalog.Customer { return cs.customers }

// Select picks the active customer by id and dismisses the selection prompt.
func (cs *CustomerSelector) Select(id string) bool {
	for i := range cs.customers {
		if cs.customers[i].ID == id {
			c := cs.customers[i]
			cs.selected = &c
			cs.prompt = false
			return true
		}
	}
	return false
}

func (cs *CustomerSelector) Selected() *catalog.Customer { return cs.selected }

func (cs *CustomerSelector) RequestSelection() { cs.prompt = true }

func (cs *CustomerSelector) DismissSelection() { cs.prompt = false }

func (cs *CustomerSelector) SelectionRequested() bool { return cs.prompt }

func (cs *CustomerSelector) reset() {
	cs.selected = nil
	cs.prompt = false
}
