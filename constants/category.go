package constants

import (
	"strings"
)

type Category string

const (
	FoodAndDining  Category = "Food & Dining"
	Groceries      Category = "Groceries"
	Transportation Category = "Transportation"
	Shopping       Category = "Shopping"
	Healthcare     Category = "Healthcare"
)

var allCategories = []Category{
	FoodAndDining,
	Groceries,
	Transportation,
	Shopping,
	Healthcare,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form category text onto the closed set.
// The second return is false when the input matched nothing.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"food":        FoodAndDining,
		"dining":      FoodAndDining,
		"restaurant":  FoodAndDining,
		"grocery":     Groceries,
		"supermarket": Groceries,
		"transport":   Transportation,
		"transit":     Transportation,
		"gas":         Transportation,
		"fuel":        Transportation,
		"retail":      Shopping,
		"pharmacy":    Healthcare,
		"medical":     Healthcare,
		"health":      Healthcare,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return "", false
}
