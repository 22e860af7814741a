package parser

import "regexp"

var (
	reStreetAddress = regexp.MustCompile(`(?i)^\d+\s+[A-Za-z][A-Za-z.\s]*\b(st|street|ave|avenue|rd|road|blvd|boulevard|dr|drive|way|lane|ln|cres|crescent|court|ct)\b`)
	reCityProvince  = regexp.MustCompile(`[A-Za-z.\s]+,\s*(AB|BC|MB|NB|NL|NS|NT|NU|ON|PE|QC|SK|YT)\b`)
)

// ExtractAddress scans lines 2-6 for a street address or a
// "<city>, <province>" pattern and returns the first hit.
func ExtractAddress(lines Lines) *string {
	for _, line := range lines.Window(1, 6) {
		if reStreetAddress.MatchString(line) || reCityProvince.MatchString(line) {
			s := line
			return &s
		}
	}
	return nil
}
