package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/receipt-ocr/constants"
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

func TestClassifyMerchantFirst(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		merchant string
		want     constants.Category
	}{
		{"SOBEYS GROCERY STORE", constants.Groceries},
		{"TIM HORTONS", constants.FoodAndDining},
		{"Starbucks Coffee #102", constants.FoodAndDining},
		{"Petro-Canada", constants.Transportation},
		{"Canadian Tire", constants.Shopping},
		{"Shoppers Drug Mart", constants.Healthcare},
	}
	for _, tc := range cases {
		got := c.Classify(tc.merchant, nil)
		require.NotNil(t, got, "merchant %q", tc.merchant)
		assert.Equal(t, tc.want, *got, "merchant %q", tc.merchant)
	}
}

func TestClassifyTimHortonsWithItems(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("TIM HORTONS", []entity.ReceiptLineItem{
		{Name: "Breakfast Sandwich", Price: 4.49, Quantity: 1},
	})

	require.NotNil(t, got)
	assert.Equal(t, constants.FoodAndDining, *got)
}

func TestClassifyItemFallback(t *testing.T) {
	c := NewClassifier()

	items := []entity.ReceiptLineItem{{Name: "Chicken Soup", Price: 3.99, Quantity: 1}}

	// restaurant/cafe hint in the merchant name flips the fallback; an empty
	// rule table forces the item pass
	dining := NewClassifierWithRules(nil).Classify("Maple Leaf Cafe", items)
	require.NotNil(t, dining)
	assert.Equal(t, constants.FoodAndDining, *dining)

	// ambiguous merchants keep the groceries bias
	groceries := c.Classify("MAPLEVIEW GENERAL", items)
	require.NotNil(t, groceries)
	assert.Equal(t, constants.Groceries, *groceries)
}

func TestClassifyRejectsUnknownRuleCategory(t *testing.T) {
	// a rule outside the closed category set is skipped; the scan continues
	// to the next rule with the same keyword
	c := NewClassifierWithRules([]Rule{
		{constants.Category("Gadgets"), []string{"acme"}},
		{constants.Shopping, []string{"acme"}},
	})

	got := c.Classify("ACME SUPPLY CO", nil)
	require.NotNil(t, got)
	assert.Equal(t, constants.Shopping, *got)

	// with no canonical rule left, the result is nil rather than an
	// out-of-set category
	bogusOnly := NewClassifierWithRules([]Rule{
		{constants.Category("Gadgets"), []string{"acme"}},
	})
	assert.Nil(t, bogusOnly.Classify("ACME SUPPLY CO", nil))
}

func TestClassifyNoMatch(t *testing.T) {
	c := NewClassifier()

	assert.Nil(t, c.Classify("ACME WIDGETS LTD", []entity.ReceiptLineItem{
		{Name: "Widget", Price: 5, Quantity: 1},
	}))
	assert.Nil(t, c.Classify("", nil))
}
