// Package category derives a spending category from extracted receipt fields
// using ordered keyword tables evaluated first-match-wins. No ML, no
// probabilities: every classification is deterministic and explainable.
package category

import (
	"strings"

	"github.com/pocketledger/receipt-ocr/constants"
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Rule maps merchant-name substrings to a category.
type Rule struct {
	Category constants.Category
	Keywords []string
}

// DefaultRules is the ordered merchant keyword table; earlier rules win.
var DefaultRules = []Rule{
	{constants.FoodAndDining, []string{
		"restaurant", "cafe", "coffee", "pizza", "burger", "grill", "diner",
		"bistro", "pub", "tim hortons", "mcdonald", "starbucks", "subway",
		"a&w", "wendy", "kfc", "harvey", "swiss chalet", "boston pizza",
	}},
	{constants.Groceries, []string{
		"grocery", "supermarket", "market", "sobeys", "loblaws", "metro",
		"no frills", "food basics", "freshco", "safeway", "superstore",
		"costco", "farm boy", "iga",
	}},
	{constants.Transportation, []string{
		"gas", "fuel", "petro", "esso", "shell", "parking", "transit",
		"uber", "lyft", "taxi", "via rail", "go train",
	}},
	{constants.Shopping, []string{
		"walmart", "canadian tire", "home depot", "best buy", "amazon",
		"dollarama", "winners", "ikea", "staples", "mall", "outlet",
	}},
	{constants.Healthcare, []string{
		"pharmacy", "shoppers drug mart", "drug mart", "rexall", "dental",
		"clinic", "medical", "optical", "physio",
	}},
}

// foodItemKeywords drive the item-name fallback when the merchant matches
// no table.
var foodItemKeywords = []string{
	"coffee", "latte", "espresso", "sandwich", "burger", "pizza", "fries",
	"donut", "muffin", "bagel", "salad", "soup", "breakfast", "lunch",
	"dinner", "combo", "meal", "wrap", "sub",
}

// Classifier evaluates the rule table in order.
type Classifier struct {
	rules []Rule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules}
}

func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify derives a category from the merchant name and item list.
// Merchant-first: the first rule with a substring match wins. If no rule
// matches, a food-keyword hit on any item name classifies the receipt as
// Food & Dining when the merchant reads like a restaurant/cafe, else
// Groceries. No match at all returns nil; that is expected, not an error.
// Every result passes through constants.Canonicalize before it leaves the
// classifier, so a rule whose category falls outside the closed set is
// skipped and the scan continues.
func (c *Classifier) Classify(merchantName string, items []entity.ReceiptLineItem) *constants.Category {
	merchantLower := strings.ToLower(merchantName)

	if merchantLower != "" {
		for _, rule := range c.rules {
			for _, kw := range rule.Keywords {
				if !strings.Contains(merchantLower, kw) {
					continue
				}
				if cat, ok := constants.Canonicalize(string(rule.Category)); ok {
					return &cat
				}
				break
			}
		}
	}

	for _, item := range items {
		nameLower := strings.ToLower(item.Name)
		for _, kw := range foodItemKeywords {
			if !strings.Contains(nameLower, kw) {
				continue
			}
			hint := string(constants.Groceries)
			if strings.Contains(merchantLower, "restaurant") || strings.Contains(merchantLower, "cafe") {
				hint = string(constants.FoodAndDining)
			}
			if cat, ok := constants.Canonicalize(hint); ok {
				return &cat
			}
		}
	}

	return nil
}
