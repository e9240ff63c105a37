package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petpos/internal/catalog"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, staticToken("tok-123"))
	if _, err := c.ListProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestEmptyTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, staticToken(""))
	if _, err := c.ListServices(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
}

func TestNon2xxMapsToAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"cart already converted"}`))
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, staticToken(""))
	_, err := c.CreateCart(context.Background(), catalog.CartRequest{CustomerID: "c1"})
	var apiErr *catalog.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "cart already converted" {
		t.Fatalf("bad APIError: %+v", apiErr)
	}
}

func TestNon2xxWithoutBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, staticToken(""))
	_, err := c.ListOrders(context.Background())
	var apiErr *catalog.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Message == "" {
		t.Fatalf("bad APIError: %+v", apiErr)
	}
}

// The backend routes resource updates as PATCH; PUT is 405 there.
func TestUpdatesUsePatch(t *testing.T) {
	mux := http.NewServeMux()
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"updated"}`))
	}
	mux.HandleFunc("PATCH /product/p1", ok)
	mux.HandleFunc("PATCH /service/s1", ok)
	mux.HandleFunc("PATCH /pet/x1", ok)
	mux.HandleFunc("PATCH /customer/c1", ok)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := catalog.NewClient(srv.URL, staticToken(""))
	ctx := context.Background()
	if _, err := c.UpdateProduct(ctx, "p1", map[string]string{"name": "Food"}, nil, ""); err != nil {
		t.Fatalf("update product: %v", err)
	}
	if _, err := c.UpdateService(ctx, "s1", catalog.Service{Name: "Grooming"}); err != nil {
		t.Fatalf("update service: %v", err)
	}
	if _, err := c.UpdatePet(ctx, "x1", map[string]string{"name": "Miu"}, nil, ""); err != nil {
		t.Fatalf("update pet: %v", err)
	}
	if _, err := c.UpdateCustomer(ctx, "c1", catalog.Customer{Name: "An"}); err != nil {
		t.Fatalf("update customer: %v", err)
	}
}

func TestListOrdersDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/order" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"o1","customerId":"c1","cartId":"k1","status":"completed","createdAt":"16:14 15/05/2025"}]`))
	}))
	defer srv.Close()

	c := catalog.NewClient(srv.URL, staticToken(""))
	orders, err := c.ListOrders(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].CartID != "k1" || orders[0].CreatedAt != "16:14 15/05/2025" {
		t.Fatalf("bad orders: %+v", orders)
	}
}
