package parser

import (
	"regexp"
	"strings"
)

// Lines is the classified view of a receipt's text. All holds every non-empty
// trimmed line in order; Content holds the subset not classified as noise,
// which is the candidate pool for item extraction. Extractors that need
// header/footer signal (address, phone, totals) read All.
type Lines struct {
	All     []string
	Content []string
}

// FirstN returns up to the first n lines of All.
func (l Lines) FirstN(n int) []string {
	if n > len(l.All) {
		n = len(l.All)
	}
	return l.All[:n]
}

// LastN returns up to the last n lines of All.
func (l Lines) LastN(n int) []string {
	if n > len(l.All) {
		n = len(l.All)
	}
	return l.All[len(l.All)-n:]
}

// Window returns All[start:end], clamped to the available lines.
func (l Lines) Window(start, end int) []string {
	if start > len(l.All) {
		start = len(l.All)
	}
	if end > len(l.All) {
		end = len(l.All)
	}
	return l.All[start:end]
}

type noiseRule struct {
	name string
	re   *regexp.Regexp
}

// Ordered noise rules; a line matching any of them is header/footer
// boilerplate, not a candidate item line.
var noiseRules = []noiseRule{
	{"business-name", regexp.MustCompile(`^[A-Z][A-Z\s&'\-.]{2,}$`)},
	{"address", regexp.MustCompile(`(?i)^\d+\s+\S+.*\b(st|street|ave|avenue|rd|road|blvd|boulevard|dr|drive|way|lane|ln|cres|crescent|court|ct)\b`)},
	{"contact", regexp.MustCompile(`(?i)\b(tel|phone|fax)\s*:`)},
	{"metadata", regexp.MustCompile(`(?i)(date\s*:|time\s*:|transaction)`)},
	{"thank-you", regexp.MustCompile(`(?i)(thank\s*you|thanks|visit\s+(us|again)|come\s+again|have\s+a\s+(nice|great)\s+day)`)},
	{"payment", regexp.MustCompile(`(?i)(payment\s*:|card\s*:|\bcash\b)`)},
	{"totals", regexp.MustCompile(`(?i)\b(sub\s?-?\s?total|total|tax|hst|gst|pst|amount|tip|gratuity)\b`)},
	{"date-time", regexp.MustCompile(`(?i)^(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}(\s+\d{1,2}:\d{2}(:\d{2})?\s*(am|pm)?)?|\d{1,2}:\d{2}(:\d{2})?\s*(am|pm)?)$`)},
	{"decorative", regexp.MustCompile(`^[*=_\-\s]{3,}$`)},
}

// IsNoise reports whether a trimmed line is structural noise.
func IsNoise(line string) bool {
	_, noisy := NoiseReason(line)
	return noisy
}

// NoiseReason returns the name of the first matching noise rule, if any.
func NoiseReason(line string) (string, bool) {
	for _, r := range noiseRules {
		if r.re.MatchString(line) {
			return r.name, true
		}
	}
	return "", false
}

// ClassifyLines splits raw text into trimmed non-empty lines and partitions
// them into noise and content.
func ClassifyLines(raw string) Lines {
	var out Lines
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out.All = append(out.All, line)
		if !IsNoise(line) {
			out.Content = append(out.Content, line)
		}
	}
	return out
}
