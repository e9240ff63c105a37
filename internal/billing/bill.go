// Package billing renders the A5 sales invoice the cashier hands over with
// every completed sale.
package billing

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"petpos/internal/catalog"
	"petpos/internal/money"
	"petpos/internal/sell"
)

// BankAccount feeds the VietQR payment code printed on the bill.
type BankAccount struct {
	BankID      string
	AccountNo   string
	AccountName string
	Template    string
}

type Generator struct {
	Dir  string
	Bank BankAccount

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func New(dir string) *Generator {
	return &Generator{
		Dir: dir,
		Bank: BankAccount{
			BankID:      "970436",
			AccountNo:   "petposshop",
			AccountName: "PET SHOP",
			Template:    "compact2",
		},
		now: time.Now,
	}
}

// Generate writes the invoice PDF and returns its path. It fails before any
// file is written when the customer snapshot is unusable, so the checkout can
// abort without leaving a stray artifact.
func (g *Generator) Generate(customer catalog.Customer, lines []sell.LineItem, totalDisplay string) (string, error) {
	if customer.Name == "" {
		return "", fmt.Errorf("billing: customer name is empty")
	}
	if customer.Phone == "" {
		return "", fmt.Errorf("billing: customer phone is empty")
	}
	total, err := money.Parse(totalDisplay)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", err
	}

	ts := g.now()
	path := filepath.Join(g.Dir, "PetShop_Bill_"+ts.Format("20060102_150405")+".pdf")

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 9, "Pet Shop Management", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "SALES INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Date: "+ts.Format("02/01/2006 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Customer: "+customer.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Phone: "+customer.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	colW := []float64{52, 26, 14, 32}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Item", "Type", "Qty", "Price"} {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		kind := "Product"
		if l.Kind == sell.KindService {
			kind = "Service"
		}
		pdf.CellFormat(colW[0], 7, l.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 7, kind, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 7, fmt.Sprintf("%d", l.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[3], 7, money.Format(l.UnitPrice)+" d", "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Total: "+totalDisplay+" d", "", 1, "R", false, 0, "")
	pdf.Ln(2)

	if err := g.addPaymentQR(pdf, total); err != nil {
		return "", err
	}

	pdf.SetY(-24)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Thank you and see you again!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("billing: write pdf: %w", err)
	}
	return path, nil
}

func (g *Generator) addPaymentQR(pdf *fpdf.Fpdf, amount int64) error {
	payload := fmt.Sprintf(
		"https://img.vietqr.io/image/%s-%s-%s.png?amount=%d&addInfo=%s&accountName=%s",
		g.Bank.BankID, g.Bank.AccountNo, g.Bank.Template,
		amount,
		url.QueryEscape("Pet shop bill"),
		url.QueryEscape(g.Bank.AccountName),
	)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("billing: payment qr: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(png))
	x := (148.0 - 36) / 2 // centered on the A5 page
	pdf.ImageOptions("payment-qr", x, pdf.GetY(), 36, 36, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 38)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Scan to pay by bank transfer", "", 1, "C", false, 0, "")
	return nil
}
