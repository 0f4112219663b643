package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/enum"
	"github.com/sangkips/posledger/pkg/apperror"
	"github.com/sangkips/posledger/pkg/printer"
	"golang.org/x/text/encoding"
)

// ReceiptFinder looks up a stored receipt; (nil, nil) means not found.
type ReceiptFinder interface {
	GetReceipt(ctx context.Context, date, receiptNo string) (*entity.Receipt, error)
}

// PrintLayout controls how receipts are rendered for the printer.
type PrintLayout struct {
	Header   entity.ReceiptHeader
	Width    int               // characters per line
	Encoding encoding.Encoding // nil sends UTF-8
}

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	receipts    ReceiptFinder
	layout      PrintLayout
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, receipts ReceiptFinder, layout PrintLayout, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		receipts:    receipts,
		layout:      layout,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != printer.TypeNone && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt prints a stored transaction. When the receipt was found but
// the printer failed, the receipt is returned together with the error.
func (s *PrinterService) PrintReceipt(ctx context.Context, date, receiptNo string) (*entity.Receipt, error) {
	receipt, err := s.receipts.GetReceipt(ctx, date, receiptNo)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.ErrNotFound
	}

	data := FormatReceipt(s.layout, receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (transaction %s): %v", receipt.TransactionID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	log.Printf("Printed receipt %s", receipt.TransactionID)
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes with one subtotal and
// tax line per rate. Reduced-rate lines are marked with an asterisk.
func FormatReceipt(layout PrintLayout, r *entity.Receipt) []byte {
	doc := printer.NewEncodedDocument(layout.Width, layout.Encoding)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(layout.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if layout.Header.Address != "" {
		doc.Text(layout.Header.Address)
	}
	if layout.Header.Phone != "" {
		doc.Text(layout.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	date := r.BusinessDate
	if r.RegisteredAtJST != nil {
		date = *r.RegisteredAtJST
	}
	doc.KeyValue("Date:", date).
		KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Cashier:", r.CashierName).
		Separator('-')

	reduced := false
	for _, item := range r.Items {
		name := item.ProductName
		if item.TaxRate == enum.TaxRateReduced {
			name = "*" + name
			reduced = true
		}
		doc.ItemLine(name, item.Qty, yen(item.PriceExcl), yen(item.LineAmountExcl))
	}

	doc.Separator('-')

	for _, b := range r.TaxSummary {
		if b.SubtotalExcl == 0 {
			continue
		}
		doc.KeyValue(fmt.Sprintf("%s subtotal", b.TaxRate), yen(b.SubtotalExcl)).
			KeyValue(fmt.Sprintf("  %s tax", b.TaxRate), yen(b.TaxAmount))
	}

	doc.SetBold(true).
		KeyValue("TOTAL:", yen(r.TotalIncl)).
		SetBold(false).
		Separator('-')

	if reduced {
		doc.Text("* reduced rate (8%) item")
	}

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your purchase!").
		Text(r.TransactionID).
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// yen renders n with thousands separators, e.g. ¥1,234
func yen(n int64) string {
	neg := n < 0
	mag := uint64(n)
	if neg {
		mag = -mag
	}
	digits := strconv.FormatUint(mag, 10)

	out := make([]byte, 0, len(digits)+len(digits)/3+1)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	if neg {
		return "-¥" + string(out)
	}
	return "¥" + string(out)
}
