package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/receipt-ocr/internal/entity"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func newTestValidator(threshold float32) *Validator {
	v := NewValidator(threshold, nil)
	v.Now = fixedNow
	return v
}

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func datePtr(t time.Time) *time.Time { return &t }

func validRecord() entity.ExtractedReceiptData {
	return entity.ExtractedReceiptData{
		MerchantName: strPtr("SOBEYS GROCERY STORE"),
		Date:         datePtr(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)),
		Items: []entity.ReceiptLineItem{
			{Name: "Bananas", Price: 2.49, Quantity: 1},
			{Name: "Milk", Price: 6.99, Quantity: 1},
		},
		Subtotal: f64Ptr(9.48),
		Tax:      f64Ptr(1.23),
		Total:    f64Ptr(10.71),
		Amount:   f64Ptr(10.71),
	}
}

func TestValidateCompleteRecord(t *testing.T) {
	v := newTestValidator(0.5)

	report := v.Validate(validRecord())

	assert.True(t, report.IsValid)
	assert.InDelta(t, 1.0, report.Confidence, 0.0001)
	assert.Empty(t, report.Issues)
}

func TestValidateEmptyRecord(t *testing.T) {
	v := newTestValidator(0.5)

	report := v.Validate(entity.ExtractedReceiptData{})

	assert.False(t, report.IsValid)
	assert.InDelta(t, 0.3, report.Confidence, 0.0001)
	assert.LessOrEqual(t, report.Confidence, float32(0.30001))
	require.Len(t, report.Issues, 3)
	assert.Equal(t, "merchant name could not be extracted", report.Issues[0])
	assert.Equal(t, "no total amount found", report.Issues[1])
	assert.Equal(t, "no items extracted", report.Issues[2])
}

func TestValidateShortMerchant(t *testing.T) {
	v := newTestValidator(0.5)
	data := validRecord()
	data.MerchantName = strPtr("A")

	report := v.Validate(data)

	assert.InDelta(t, 0.9, report.Confidence, 0.0001)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "merchant name is too short", report.Issues[0])
}

func TestValidateTotalBounds(t *testing.T) {
	v := newTestValidator(0.5)

	zero := validRecord()
	zero.Total = f64Ptr(0)
	zero.Amount = f64Ptr(0)
	report := v.Validate(zero)
	assert.InDelta(t, 0.8, report.Confidence, 0.0001)
	assert.Contains(t, report.Issues, "total amount is not positive")

	huge := validRecord()
	huge.Total = f64Ptr(25000)
	huge.Amount = f64Ptr(25000)
	report = v.Validate(huge)
	assert.InDelta(t, 0.9, report.Confidence, 0.0001)
	assert.Contains(t, report.Issues, "total amount 25000.00 is implausibly large")
}

func TestValidateAmountAliasCountsAsTotal(t *testing.T) {
	v := newTestValidator(0.5)
	data := validRecord()
	data.Total = nil // Amount alone is enough

	report := v.Validate(data)

	assert.InDelta(t, 1.0, report.Confidence, 0.0001)
}

func TestValidateDateWindow(t *testing.T) {
	v := newTestValidator(0.5)

	stale := validRecord()
	stale.Date = datePtr(fixedNow().AddDate(-2, 0, 0))
	report := v.Validate(stale)
	assert.InDelta(t, 0.9, report.Confidence, 0.0001)
	assert.Contains(t, report.Issues, "transaction date is outside the expected window")

	future := validRecord()
	future.Date = datePtr(fixedNow().AddDate(0, 0, 30))
	report = v.Validate(future)
	assert.InDelta(t, 0.9, report.Confidence, 0.0001)

	nearFuture := validRecord()
	nearFuture.Date = datePtr(fixedNow().AddDate(0, 0, 3))
	report = v.Validate(nearFuture)
	assert.InDelta(t, 1.0, report.Confidence, 0.0001)
}

func TestValidateInvalidItemFraction(t *testing.T) {
	v := newTestValidator(0.5)
	data := validRecord()
	data.Items = []entity.ReceiptLineItem{
		{Name: "Bananas", Price: 2.49, Quantity: 1},
		{Name: "", Price: 1.00, Quantity: 1},
	}

	report := v.Validate(data)

	// half the items are invalid: 0.5 * 0.2 penalty
	assert.InDelta(t, 0.9, report.Confidence, 0.0001)
	assert.Contains(t, report.Issues, "1 of 2 items look invalid")
}

func TestValidateThresholdDecidesValidity(t *testing.T) {
	data := entity.ExtractedReceiptData{} // confidence 0.3

	assert.False(t, newTestValidator(0.5).Validate(data).IsValid)
	assert.True(t, newTestValidator(0.2).Validate(data).IsValid)
}

func TestValidateNeverMutatesRecord(t *testing.T) {
	v := newTestValidator(0.5)
	data := validRecord()
	before := data

	_ = v.Validate(data)

	assert.Equal(t, before, data)
}
