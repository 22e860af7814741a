package parser

import (
	"fmt"
	"regexp"
)

var rePhone = regexp.MustCompile(`(?i)(?:(?:tel|phone)\s*:?\s*)?\(?(\d{3})\)?[\s.-]?(\d{3})[\s.-]?(\d{4})\b`)

// ExtractPhone scans the first eight lines for a North-American ten-digit
// phone grouping, normalized to "(NNN) NNN-NNNN".
func ExtractPhone(lines Lines) *string {
	for _, line := range lines.FirstN(8) {
		if m := rePhone.FindStringSubmatch(line); m != nil {
			s := fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
			return &s
		}
	}
	return nil
}
