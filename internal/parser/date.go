package parser

import (
	"regexp"
	"time"
)

// Date patterns in priority order: an explicit "Date:" prefixed slash-date,
// any slash-date, any hyphen-date, ISO.
var datePatterns = []struct {
	re      *regexp.Regexp
	layouts []string
}{
	{regexp.MustCompile(`(?i)date\s*:?\s*(\d{1,2}/\d{1,2}/\d{2,4})`), []string{"1/2/2006", "1/2/06"}},
	{regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})`), []string{"1/2/2006", "1/2/06"}},
	{regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{2,4})`), []string{"1-2-2006", "1-2-06"}},
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`), []string{"2006-01-02"}},
}

// ExtractDate searches the full raw text (not line by line) for the first
// date match that parses into a real calendar date.
func ExtractDate(raw string) *time.Time {
	for _, p := range datePatterns {
		for _, m := range p.re.FindAllStringSubmatch(raw, -1) {
			for _, layout := range p.layouts {
				if t, err := time.Parse(layout, m[1]); err == nil {
					return &t
				}
			}
		}
	}
	return nil
}
