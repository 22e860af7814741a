package parser

import (
	"regexp"
	"strings"
)

var (
	reMerchantSkip = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\d+\s+\S+.*\b(st|street|ave|avenue|rd|road|blvd|boulevard|dr|drive|way|lane|ln)\b`),
		regexp.MustCompile(`(?i)\b(tel|phone|fax)\s*:`),
		regexp.MustCompile(`(?i)(date\s*:|time\s*:)`),
		regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	}

	reAllCapsName  = regexp.MustCompile(`^[A-Z][A-Z0-9\s&'\-.#]{2,}$`)
	reStoreKeyword = regexp.MustCompile(`(?i)\b(store|market|restaurant|cafe|coffee|pizza|grill|mart|shop|pharmacy|grocery|bakery|deli|diner)\b`)
	reLegalSuffix  = regexp.MustCompile(`(?i)\b(inc|ltd|llc|corp|co)\.?$`)
	reStoreNumber  = regexp.MustCompile(`(^\s*#\d+\s*)|(\s*#\d+\s*$)`)
	reInnerSpaces  = regexp.MustCompile(`\s{2,}`)
	knownMerchants = []string{
		"tim hortons", "mcdonald", "starbucks", "subway", "a&w", "wendy",
		"sobeys", "loblaws", "metro", "no frills", "food basics", "freshco",
		"walmart", "costco", "canadian tire", "home depot", "dollarama",
		"shoppers drug mart", "rexall", "lcbo", "petro-canada", "esso", "shell",
	}
)

// ExtractMerchantName scans the first five lines for a business-name signal:
// an all-caps name, a store-type keyword, a legal-entity suffix, or a known
// chain. Falls back to the first non-trivial non-noise line.
func ExtractMerchantName(lines Lines) *string {
	head := lines.FirstN(5)

	for _, line := range head {
		if merchantSkip(line) {
			continue
		}
		if looksLikeBusinessName(line) {
			name := cleanMerchantName(line)
			if name != "" {
				return &name
			}
		}
	}

	// fallback: first non-trivial non-noise line; an all-caps business name
	// is noise for item extraction but is exactly what we want here
	for _, line := range head {
		if merchantSkip(line) {
			continue
		}
		if reason, noisy := NoiseReason(line); noisy && reason != "business-name" {
			continue
		}
		if len(line) >= 3 && len(line) <= 60 {
			name := cleanMerchantName(line)
			if name != "" {
				return &name
			}
		}
	}
	return nil
}

func merchantSkip(line string) bool {
	for _, re := range reMerchantSkip {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func looksLikeBusinessName(line string) bool {
	if reAllCapsName.MatchString(line) {
		return true
	}
	if reStoreKeyword.MatchString(line) {
		return true
	}
	if reLegalSuffix.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, m := range knownMerchants {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// cleanMerchantName strips leading/trailing store-number tokens ("#4521")
// and collapses internal whitespace.
func cleanMerchantName(line string) string {
	s := reStoreNumber.ReplaceAllString(line, "")
	s = reInnerSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
