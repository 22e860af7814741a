package parser

import (
	"regexp"
)

// Totals hold the tax-aware money fields read off labeled lines.
type Totals struct {
	Subtotal *float64
	Tax      *float64
	Tip      *float64
	Total    *float64
}

// maxPlausibleTax guards against a loose pattern capturing a percentage
// instead of a dollar amount; a true tax line on a typical receipt is small.
const maxPlausibleTax = 50

// Ordered label patterns per field. The amount is always the trailing money
// token on the line, so "HST (13%) $2.63" yields 2.63, not 13.
var (
	subtotalLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^sub\s?-?\s?total\b`),
	}
	taxLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bhst\b`),
		regexp.MustCompile(`(?i)\bgst\b`),
		regexp.MustCompile(`(?i)\bpst\b`),
		regexp.MustCompile(`(?i)\btax\b`),
	}
	totalLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^total\b`),
		regexp.MustCompile(`(?i)^amount\b`),
		regexp.MustCompile(`^TOTAL\b`),
	}
	tipLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btip\b`),
		regexp.MustCompile(`(?i)\bgratuity\b`),
	}

	reTrailingMoney = regexp.MustCompile(`\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\s*$`)
)

// ExtractTotals scans every line (noise-classified totals lines carry the
// values) and fills each field from its first matching labeled line; once set,
// a field is never overwritten.
func ExtractTotals(lines Lines) Totals {
	var t Totals
	for _, line := range lines.All {
		if t.Subtotal == nil {
			if v, ok := labeledAmount(line, subtotalLabels); ok {
				t.Subtotal = &v
			}
		}
		if t.Tax == nil {
			if v, ok := labeledAmount(line, taxLabels); ok && v <= maxPlausibleTax {
				t.Tax = &v
			}
		}
		if t.Total == nil {
			if v, ok := labeledAmount(line, totalLabels); ok {
				t.Total = &v
			}
		}
		if t.Tip == nil {
			if v, ok := labeledAmount(line, tipLabels); ok {
				t.Tip = &v
			}
		}
	}
	return t
}

func labeledAmount(line string, labels []*regexp.Regexp) (float64, bool) {
	matched := false
	for _, re := range labels {
		if re.MatchString(line) {
			matched = true
			break
		}
	}
	if !matched {
		return 0, false
	}
	m := reTrailingMoney.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := parseMoney(m[1])
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
