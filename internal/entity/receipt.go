package entity

import (
	"time"

	"github.com/pocketledger/receipt-ocr/constants"
)

// OCRBackend identifies which backend produced the raw text.
type OCRBackend string

const (
	BackendCloudVision OCRBackend = "cloud-vision"
	BackendSimulated   OCRBackend = "simulated"
)

// RawOCROutput is the immutable result of one backend call, consumed by the
// parsing pipeline.
type RawOCROutput struct {
	Text              string        `json:"text"`
	BackendConfidence float32       `json:"backend_confidence"`
	Backend           OCRBackend    `json:"backend"`
	Elapsed           time.Duration `json:"elapsed"`
	Warnings          []string      `json:"warnings,omitempty"`
}

// ReceiptLineItem is one purchased item. Order preserves receipt line order;
// duplicate names stay as separate entries.
type ReceiptLineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ExtractedReceiptData is the assembled record. Every field is independently
// optional; absence is an expected state, not an error.
type ExtractedReceiptData struct {
	MerchantName  *string             `json:"merchant_name,omitempty"`
	Address       *string             `json:"address,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	Date          *time.Time          `json:"date,omitempty"`
	Items         []ReceiptLineItem   `json:"items,omitempty"`
	Subtotal      *float64            `json:"subtotal,omitempty"`
	Tax           *float64            `json:"tax,omitempty"`
	Tip           *float64            `json:"tip,omitempty"`
	Total         *float64            `json:"total,omitempty"`
	Amount        *float64            `json:"amount,omitempty"` // alias of Total, kept for older callers
	PaymentMethod *string             `json:"payment_method,omitempty"`
	Category      *constants.Category `json:"category,omitempty"`
}

// EffectiveTotal returns Amount when set, else Total, else 0, with a flag
// indicating whether either was present.
func (d ExtractedReceiptData) EffectiveTotal() (float64, bool) {
	if d.Amount != nil {
		return *d.Amount, true
	}
	if d.Total != nil {
		return *d.Total, true
	}
	return 0, false
}

// ValidationReport is recomputed on demand from an ExtractedReceiptData;
// it is never stored inside the record it scores.
type ValidationReport struct {
	IsValid    bool     `json:"is_valid"`
	Confidence float32  `json:"confidence"`
	Issues     []string `json:"issues"`
}

// OCRResult is the full pipeline output, created per request and not retained
// by the engine.
type OCRResult struct {
	Text           string               `json:"text"`
	Confidence     float32              `json:"confidence"`
	ExtractedData  ExtractedReceiptData `json:"extracted_data"`
	ProcessingTime time.Duration        `json:"processing_time"`
	OCRMethod      OCRBackend           `json:"ocr_method"`
}
