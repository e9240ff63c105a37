package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"petpos/internal/catalog"
	"petpos/internal/config"
	"petpos/internal/http/handlers"
	"petpos/internal/sell"
	"petpos/internal/store"
)

const testKey = "6465762d6f6e6c792d746f6b656e2d6b65792d33322d62797465732121212121"

// fakeShop emulates the remote pet-shop API for handler tests.
func fakeShop(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		var req catalog.CartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.Cart{
			ID: "cart-42", CustomerID: req.CustomerID,
			Items: req.Items, TotalAmount: req.TotalAmount,
		})
	})
	mux.HandleFunc("POST /order", func(w http.ResponseWriter, r *http.Request) {
		var req catalog.OrderRequest
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog.Order{
			ID: "order-7", CustomerID: req.CustomerID, CartID: req.CartID,
			Status: req.Status, CreatedAt: "10:30 15/05/2024",
		})
	})
	mux.HandleFunc("GET /customer", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]catalog.Customer{
			{ID: "c1", Name: "An Nguyen", Phone: "0901234567"},
		})
	})
	mux.HandleFunc("GET /product", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]catalog.Product{
			{ID: "p1", Name: "Royal Canin Puppy", Price: 50000},
		})
	})
	mux.HandleFunc("GET /service", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]catalog.Service{
			{ID: "s1", Name: "Grooming", Price: 30000},
		})
	})
	mux.HandleFunc("POST /order/smart", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(catalog.SmartOrderResponse{
			Success: true,
			Message: "ok",
			CartItems: []catalog.SmartOrderCartItem{
				{ID: "p1", Name: "Royal Canin Puppy", Price: 50000, Type: "product", Quantity: 2},
				{ID: "x9", Name: "Mystery", Price: 1, Type: "pet", Quantity: 1},
			},
			TotalAmount: 100000,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSellApp(t *testing.T) *fiber.App {
	t.Helper()
	upstream := fakeShop(t)

	st, err := store.Open(":memory:", testKey)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	client := catalog.NewClient(upstream.URL, st)
	reg := sell.NewRegistry()
	cfg := config.Config{BillDir: t.TempDir()}

	deps := handlers.NewDeps(client, st, reg, cfg)

	app := fiber.New()
	app.Use(requestid.New())
	grp := app.Group("/sell")
	grp.Get("/cart", deps.SellHandler.ViewCart)
	grp.Post("/cart/items", deps.SellHandler.AddItem)
	grp.Patch("/cart/items/:id", deps.SellHandler.UpdateQuantity)
	grp.Delete("/cart/items/:kind/:id", deps.SellHandler.RemoveItem)
	grp.Delete("/cart", deps.SellHandler.ClearCart)
	grp.Get("/search", deps.SellHandler.SearchItems)
	grp.Get("/customers", deps.SellHandler.ListCustomers)
	grp.Post("/customer", deps.SellHandler.SelectCustomer)
	grp.Post("/checkout", deps.SellHandler.Checkout)
	app.Post("/smart-order", deps.SmartHandler.Create)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, sid string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return resp, out
}

func TestAddItemValidatesKind(t *testing.T) {
	app := newSellApp(t)

	resp, _ := doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"p1","name":"Food","unitPrice":50000,"kind":"pet"}`, "sid-1")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown kind expected 400, got %d", resp.StatusCode)
	}

	resp2, view := doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"p1","name":"Food","unitPrice":50000,"kind":"product"}`, "sid-1")
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("add expected 200, got %d", resp2.StatusCode)
	}
	if view["total"] != "50,000" {
		t.Fatalf("total = %v, want 50,000", view["total"])
	}
}

func TestCartFlowAcrossRequests(t *testing.T) {
	app := newSellApp(t)
	sid := "sid-flow"

	doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"p1","name":"Food","unitPrice":50000,"kind":"product"}`, sid)
	doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"p1","name":"Food","unitPrice":50000,"kind":"product"}`, sid)
	doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"s1","name":"Grooming","unitPrice":30000,"kind":"service"}`, sid)

	_, view := doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["total"] != "130,000" {
		t.Fatalf("total = %v, want 130,000", view["total"])
	}
	items := view["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}

	// Quantity updates apply to products only and clamp at one.
	doJSON(t, app, "PATCH", "/sell/cart/items/p1", `{"quantity":0}`, sid)
	_, view = doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["total"] != "80,000" {
		t.Fatalf("after clamp total = %v, want 80,000", view["total"])
	}

	// Removal is keyed by id and kind together.
	doJSON(t, app, "DELETE", "/sell/cart/items/service/s1", "", sid)
	_, view = doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["total"] != "50,000" {
		t.Fatalf("after remove total = %v, want 50,000", view["total"])
	}

	// A different terminal session sees its own empty cart.
	_, other := doJSON(t, app, "GET", "/sell/cart", "", "sid-other")
	if other["total"] != "0" {
		t.Fatalf("other session total = %v, want 0", other["total"])
	}
}

func TestCheckoutNeedsCustomerThenCompletes(t *testing.T) {
	app := newSellApp(t)
	sid := "sid-checkout"

	doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"p1","name":"Food","unitPrice":50000,"kind":"product"}`, sid)

	resp, body := doJSON(t, app, "POST", "/sell/checkout", "", sid)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("no customer expected 400, got %d", resp.StatusCode)
	}
	if body["needCustomer"] != true {
		t.Fatalf("expected needCustomer flag, got %v", body)
	}

	resp2, _ := doJSON(t, app, "POST", "/sell/customer", `{"id":"c1"}`, sid)
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("select customer expected 200, got %d", resp2.StatusCode)
	}

	resp3, out := doJSON(t, app, "POST", "/sell/checkout", "", sid)
	if resp3.StatusCode != http.StatusOK {
		t.Fatalf("checkout expected 200, got %d: %v", resp3.StatusCode, out)
	}
	if out["orderId"] != "order-7" || out["cartId"] != "cart-42" {
		t.Fatalf("unexpected checkout result: %v", out)
	}
	if p, _ := out["billPath"].(string); p == "" {
		t.Fatal("expected a bill path")
	}

	// The cart resets after a completed sale.
	_, view := doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["total"] != "0" {
		t.Fatalf("post-checkout total = %v, want 0", view["total"])
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	app := newSellApp(t)

	resp, _ := doJSON(t, app, "POST", "/sell/checkout", "", "sid-empty")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty cart expected 400, got %d", resp.StatusCode)
	}
}

func TestSearchReturnsProductsThenServices(t *testing.T) {
	app := newSellApp(t)

	_, out := doJSON(t, app, "GET", "/sell/search?q=o", "", "sid-search")
	results := out["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0].(map[string]any)
	if first["kind"] != "product" {
		t.Fatalf("products should sort first, got %v", first["kind"])
	}
}

func TestCartViewCarriesSearchState(t *testing.T) {
	app := newSellApp(t)
	sid := "sid-searchstate"

	doJSON(t, app, "GET", "/sell/search?q=groom", "", sid)
	_, view := doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["query"] != "groom" {
		t.Fatalf("query = %v, want groom", view["query"])
	}
	if results := view["searchResults"].([]any); len(results) != 1 {
		t.Fatalf("expected 1 kept result, got %d", len(results))
	}

	// A completed sale resets the whole screen, search state included.
	doJSON(t, app, "POST", "/sell/cart/items",
		`{"id":"p1","name":"Food","unitPrice":50000,"kind":"product"}`, sid)
	doJSON(t, app, "POST", "/sell/customer", `{"id":"c1"}`, sid)
	doJSON(t, app, "POST", "/sell/checkout", "", sid)
	_, view = doJSON(t, app, "GET", "/sell/cart", "", sid)
	if _, ok := view["query"]; ok {
		t.Fatalf("search state survived the reset: %v", view["query"])
	}
}

func TestSmartOrderParksItemsForNextCartView(t *testing.T) {
	app := newSellApp(t)
	sid := "sid-smart"

	resp, out := doJSON(t, app, "POST", "/smart-order",
		`{"text":"2 bags of puppy food"}`, sid)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("smart order expected 200, got %d", resp.StatusCode)
	}
	// The unknown "pet" line is dropped on translation.
	if items := out["items"].([]any); len(items) != 1 {
		t.Fatalf("expected 1 translated item, got %d", len(items))
	}

	_, view := doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["total"] != "100,000" {
		t.Fatalf("drained total = %v, want 100,000", view["total"])
	}

	// The hand-off is single-shot.
	_, view = doJSON(t, app, "GET", "/sell/cart", "", sid)
	if view["total"] != "100,000" {
		t.Fatalf("second view total = %v, want 100,000", view["total"])
	}
}

func TestSmartOrderRequiresText(t *testing.T) {
	app := newSellApp(t)

	resp, _ := doJSON(t, app, "POST", "/smart-order", `{"text":"  "}`, "sid-x")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank text expected 400, got %d", resp.StatusCode)
	}
}
