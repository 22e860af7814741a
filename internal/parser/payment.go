package parser

import "regexp"

var (
	rePaymentKeyword = regexp.MustCompile(`(?i)\b(credit card|debit card|cash|visa|mastercard|master card|amex|american express|interac)\b`)
	reMaskedCard     = regexp.MustCompile(`\*{4}\s*\d{4}`)
)

// ExtractPaymentMethod scans the last ten lines for an explicit payment
// keyword or a masked-card pattern; the first match wins.
func ExtractPaymentMethod(lines Lines) *string {
	for _, line := range lines.LastN(10) {
		if m := rePaymentKeyword.FindStringSubmatch(line); m != nil {
			s := m[1]
			return &s
		}
		if m := reMaskedCard.FindString(line); m != "" {
			s := m
			return &s
		}
	}
	return nil
}
