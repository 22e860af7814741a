package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Item lines are "<name> <price>" with a trailing money token; negative or
// zero prices are not purchasable items.
var reItemLine = regexp.MustCompile(`^(.+?)\s+(-?\$?\s?-?\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\s*$`)

// ExtractItems attempts "<name> <price>" on every content line. Quantity is
// always 1; no multi-quantity detection.
func ExtractItems(lines Lines) []entity.ReceiptLineItem {
	var items []entity.ReceiptLineItem
	for _, line := range lines.Content {
		m := reItemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		price, err := parseMoney(m[2])
		if err != nil || price <= 0 {
			continue
		}
		items = append(items, entity.ReceiptLineItem{
			Name:     name,
			Price:    price,
			Quantity: 1,
		})
	}
	return items
}

// parseMoney strips currency decoration and parses a dollar figure,
// rejecting non-finite values.
func parseMoney(s string) (float64, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
