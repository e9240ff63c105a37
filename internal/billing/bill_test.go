package billing_test

import (
	"os"
	"path/filepath"
	"testing"

	"petpos/internal/billing"
	"petpos/internal/catalog"
	"petpos/internal/sell"
)

var testLines = []sell.LineItem{
	{ID: "p1", Name: "Dog Food", UnitPrice: 50000, Kind: sell.KindProduct, Quantity: 2},
	{ID: "s1", Name: "Grooming", UnitPrice: 30000, Kind: sell.KindService, Quantity: 1},
}

func TestGenerateWritesPDF(t *testing.T) {
	dir := t.TempDir()
	g := billing.New(dir)

	cust := catalog.Customer{ID: "c1", Name: "An", Phone: "0900000000"}
	path, err := g.Generate(cust, testLines, "130,000")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("bill written outside dir: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || string(data[:4]) != "%PDF" {
		t.Fatalf("not a PDF, first bytes %q", data[:min(8, len(data))])
	}
}

func TestGenerateRejectsIncompleteCustomer(t *testing.T) {
	g := billing.New(t.TempDir())

	if _, err := g.Generate(catalog.Customer{Phone: "0900000000"}, testLines, "130,000"); err == nil {
		t.Fatal("missing name must fail")
	}
	if _, err := g.Generate(catalog.Customer{Name: "An"}, testLines, "130,000"); err == nil {
		t.Fatal("missing phone must fail")
	}
}

func TestGenerateRejectsBadTotal(t *testing.T) {
	g := billing.New(t.TempDir())
	cust := catalog.Customer{Name: "An", Phone: "0900000000"}
	if _, err := g.Generate(cust, testLines, "12x"); err == nil {
		t.Fatal("unparseable total must fail")
	}
}
