package checkout_test

import (
	"context"
	"errors"
	"testing"

	"petpos/internal/catalog"
	"petpos/internal/checkout"
	"petpos/internal/sell"
)

type fakeAPI struct {
	cartReq  *catalog.CartRequest
	orderReq *catalog.OrderRequest
	cartErr  error
	orderErr error
	calls    int
}

func (f *fakeAPI) CreateCart(_ context.Context, req catalog.CartRequest) (*catalog.Cart, error) {
	f.calls++
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	f.cartReq = &req
	return &catalog.Cart{ID: "cart-42", CustomerID: req.CustomerID, TotalAmount: req.TotalAmount}, nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, req catalog.OrderRequest) (*catalog.Order, error) {
	f.calls++
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	f.orderReq = &req
	return &catalog.Order{ID: "order-7", CustomerID: req.CustomerID, CartID: req.CartID, Status: req.Status}, nil
}

type fakeBills struct {
	err   error
	calls int
}

func (f *fakeBills) Generate(catalog.Customer, []sell.LineItem, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "/bills/test.pdf", nil
}

func sessionWithSale(t *testing.T) *sell.Session {
	t.Helper()
	s := &sell.Session{ID: "sid"}
	s.Cart.AddItem(sell.LineItem{ID: "p1", Name: "Dog Food", UnitPrice: 50000, Kind: sell.KindProduct})
	s.Cart.UpdateQuantity("p1", 2)
	s.Cart.AddItem(sell.LineItem{ID: "s1", Name: "Grooming", UnitPrice: 30000, Kind: sell.KindService})

	src := &staticCustomers{list: []catalog.Customer{{ID: "c1", Name: "An", Phone: "0900000000"}}}
	s.Customers.Load(context.Background(), src)
	if !s.Customers.Select("c1") {
		t.Fatal("select c1")
	}
	return s
}

type staticCustomers struct{ list []catalog.Customer }

func (s *staticCustomers) ListCustomers(context.Context) ([]catalog.Customer, error) {
	return s.list, nil
}

func TestEmptyCartRejectedBeforeAnyRemoteCall(t *testing.T) {
	api := &fakeAPI{}
	bills := &fakeBills{}
	o := &checkout.Orchestrator{API: api, Bills: bills}

	s := &sell.Session{ID: "sid"}
	_, err := o.Process(context.Background(), s)
	if !errors.Is(err, checkout.ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
	if api.calls != 0 || bills.calls != 0 {
		t.Fatal("nothing may be called for an empty cart")
	}
}

func TestMissingCustomerRejectedAndPrompts(t *testing.T) {
	api := &fakeAPI{}
	bills := &fakeBills{}
	o := &checkout.Orchestrator{API: api, Bills: bills}

	s := &sell.Session{ID: "sid"}
	s.Cart.AddItem(sell.LineItem{ID: "p1", UnitPrice: 50000, Kind: sell.KindProduct})

	_, err := o.Process(context.Background(), s)
	if !errors.Is(err, checkout.ErrNoCustomer) {
		t.Fatalf("want ErrNoCustomer, got %v", err)
	}
	if !s.Customers.SelectionRequested() {
		t.Fatal("missing customer must raise the selection prompt")
	}
	if api.calls != 0 || bills.calls != 0 {
		t.Fatal("nothing may be called without a customer")
	}
}

func TestBillFailureAbortsBeforeSubmission(t *testing.T) {
	api := &fakeAPI{}
	bills := &fakeBills{err: errors.New("printer on fire")}
	o := &checkout.Orchestrator{API: api, Bills: bills}

	s := sessionWithSale(t)
	_, err := o.Process(context.Background(), s)
	if err == nil || api.calls != 0 {
		t.Fatalf("bill failure must abort before remote calls, err=%v calls=%d", err, api.calls)
	}
	if s.Cart.Empty() {
		t.Fatal("cart must survive a failed checkout")
	}
}

func TestFullCheckoutFlow(t *testing.T) {
	api := &fakeAPI{}
	bills := &fakeBills{}
	o := &checkout.Orchestrator{API: api, Bills: bills}

	s := sessionWithSale(t)
	if got := s.Cart.DisplayTotal(); got != "130,000" {
		t.Fatalf("precondition: display total %q", got)
	}

	res, err := o.Process(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}

	if api.cartReq == nil {
		t.Fatal("cart request not sent")
	}
	wantItems := []catalog.CartItemRequest{
		{Type: "product", ItemID: "p1", Quantity: 2, Price: 50000},
		{Type: "service", ItemID: "s1", Quantity: 1, Price: 30000},
	}
	if len(api.cartReq.Items) != len(wantItems) {
		t.Fatalf("items = %+v", api.cartReq.Items)
	}
	for i, want := range wantItems {
		if api.cartReq.Items[i] != want {
			t.Errorf("item[%d] = %+v, want %+v", i, api.cartReq.Items[i], want)
		}
	}
	if api.cartReq.CustomerID != "c1" || api.cartReq.TotalAmount != 130000 {
		t.Fatalf("cart request = %+v", api.cartReq)
	}

	if api.orderReq == nil {
		t.Fatal("order request not sent")
	}
	if api.orderReq.CustomerID != "c1" || api.orderReq.CartID != "cart-42" || api.orderReq.Status != "completed" {
		t.Fatalf("order request = %+v", api.orderReq)
	}

	if res.CartID != "cart-42" || res.OrderID != "order-7" || res.Total != 130000 {
		t.Fatalf("result = %+v", res)
	}

	// Success resets the sell state.
	if !s.Cart.Empty() || s.Cart.DisplayTotal() != "0" {
		t.Fatal("cart must be empty after a completed sale")
	}
	if s.Customers.Selected() != nil {
		t.Fatal("customer selection must reset")
	}
	if s.BillPath != "/bills/test.pdf" {
		t.Fatalf("bill path = %q", s.BillPath)
	}
}

func TestOrderFailureSurfacesRemoteError(t *testing.T) {
	api := &fakeAPI{orderErr: &catalog.APIError{Status: 500, Message: "order store down"}}
	bills := &fakeBills{}
	o := &checkout.Orchestrator{API: api, Bills: bills}

	s := sessionWithSale(t)
	_, err := o.Process(context.Background(), s)
	var apiErr *catalog.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "order store down" {
		t.Fatalf("want remote error surfaced, got %v", err)
	}
	if s.Cart.Empty() {
		t.Fatal("state must not reset on failure")
	}
}

func TestDuplicateSubmissionBlocked(t *testing.T) {
	o := &checkout.Orchestrator{API: &fakeAPI{}, Bills: &fakeBills{}}
	s := sessionWithSale(t)

	if !s.BeginCheckout() {
		t.Fatal("flag unexpectedly set")
	}
	_, err := o.Process(context.Background(), s)
	if !errors.Is(err, checkout.ErrProcessing) {
		t.Fatalf("want ErrProcessing, got %v", err)
	}
	s.EndCheckout()
	if _, err := o.Process(context.Background(), s); err != nil {
		t.Fatalf("checkout after release failed: %v", err)
	}
}
