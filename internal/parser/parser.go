// Package parser reconstructs a structured receipt record from raw OCR text.
// Parsing is a pure function of its input: extractors are independent,
// order-insensitive passes that return absence instead of errors.
package parser

import (
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Parse normalizes raw OCR text, classifies its lines, and runs every field
// extractor over the classified views. No extractor reads another extractor's
// output, so running Parse twice on the same text yields identical records.
func Parse(raw string) entity.ExtractedReceiptData {
	text := Normalize(raw)
	lines := ClassifyLines(text)

	totals := ExtractTotals(lines)

	data := entity.ExtractedReceiptData{
		MerchantName:  ExtractMerchantName(lines),
		Address:       ExtractAddress(lines),
		Phone:         ExtractPhone(lines),
		Date:          ExtractDate(text),
		Items:         ExtractItems(lines),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Tip:           totals.Tip,
		Total:         totals.Total,
		PaymentMethod: ExtractPaymentMethod(lines),
	}

	// Amount mirrors Total for older callers.
	if data.Total != nil {
		amount := *data.Total
		data.Amount = &amount
	}

	return data
}
