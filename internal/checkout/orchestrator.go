// Package checkout runs the bill -> cart -> order sequence against the remote
// API. Steps are strictly sequential and short-circuit on the first failure;
// the bill comes first so no sale is ever submitted without a receipt artifact.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
	"petpos/internal/money"
	"petpos/internal/sell"
	"petpos/internal/store"
)

var (
	ErrCartEmpty  = errors.New("cart is empty")
	ErrNoCustomer = errors.New("no customer selected")
	ErrProcessing = errors.New("checkout already in progress")
)

// BillWriter produces the invoice document and returns its path.
type BillWriter interface {
	Generate(customer catalog.Customer, lines []sell.LineItem, totalDisplay string) (string, error)
}

// API is the slice of the remote catalog the checkout needs.
type API interface {
	CreateCart(ctx context.Context, req catalog.CartRequest) (*catalog.Cart, error)
	CreateOrder(ctx context.Context, req catalog.OrderRequest) (*catalog.Order, error)
}

type Orchestrator struct {
	API   API
	Bills BillWriter
	Store *store.Store // nil disables local bill/order records
}

type Result struct {
	BillPath string
	CartID   string
	OrderID  string
	Total    int64
}

// Process checks the preconditions locally, then runs bill generation, cart
// submission and order submission in order. On success the session's sell
// state is reset. A failure after the cart was created leaves that cart
// orphaned server-side; the terminal does not compensate.
func (o *Orchestrator) Process(ctx context.Context, sess *sell.Session) (*Result, error) {
	if !sess.BeginCheckout() {
		return nil, ErrProcessing
	}
	defer sess.EndCheckout()

	sess.Lock()
	lines := sess.Cart.Lines()
	totalDisplay := sess.Cart.DisplayTotal()
	customer := sess.Customers.Selected()
	if len(lines) == 0 {
		sess.Unlock()
		return nil, ErrCartEmpty
	}
	if customer == nil {
		sess.Customers.RequestSelection()
		sess.Unlock()
		return nil, ErrNoCustomer
	}
	sess.Unlock()

	billPath, err := o.Bills.Generate(*customer, lines, totalDisplay)
	if err != nil {
		return nil, fmt.Errorf("cannot generate bill: %w", err)
	}

	total, err := money.Parse(totalDisplay)
	if err != nil {
		return nil, err
	}

	items := make([]catalog.CartItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, catalog.CartItemRequest{
			Type:     string(l.Kind),
			ItemID:   l.ID,
			Quantity: l.Quantity,
			Price:    l.UnitPrice,
		})
	}

	cart, err := o.API.CreateCart(ctx, catalog.CartRequest{
		CustomerID:  customer.ID,
		Items:       items,
		TotalAmount: total,
	})
	if err != nil {
		return nil, err
	}

	order, err := o.API.CreateOrder(ctx, catalog.OrderRequest{
		CustomerID: customer.ID,
		CartID:     cart.ID,
		Status:     "completed",
	})
	if err != nil {
		return nil, err
	}

	sess.Lock()
	sess.BillPath = billPath
	sess.Reset()
	sess.Unlock()

	// The sale is committed remotely at this point; local bookkeeping
	// failures are logged, not surfaced.
	if o.Store != nil {
		if err := o.Store.RecordBill(store.Bill{
			ID:         uuid.NewString(),
			CustomerID: customer.ID,
			OrderID:    order.ID,
			Path:       billPath,
			Total:      total,
		}); err != nil {
			applog.Warn(nil, "checkout.record_bill", map[string]any{"err": err.Error()})
		}
		if err := o.Store.CacheOrders([]catalog.Order{*order}); err != nil {
			applog.Warn(nil, "checkout.cache_order", map[string]any{"err": err.Error()})
		}
	}

	return &Result{BillPath: billPath, CartID: cart.ID, OrderID: order.ID, Total: total}, nil
}
