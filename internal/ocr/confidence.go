package ocr

import (
	"regexp"
	"strings"
)

// Cloud backends that omit per-token scores are still normally reliable, so
// the default is a fixed high value rather than 0.
const defaultCloudConfidence = 0.9

// tokenMeanConfidence averages per-token confidences, excluding the first
// annotation (the aggregate full-text entry).
func tokenMeanConfidence(annotations []visionTextAnnotation) float32 {
	var sum float32
	var n int
	for i, a := range annotations {
		if i == 0 {
			continue
		}
		if a.Confidence > 0 {
			sum += a.Confidence
			n++
		}
	}
	if n == 0 {
		return defaultCloudConfidence
	}
	return sum / float32(n)
}

var (
	reDate   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	reCurr   = regexp.MustCompile(`\b(usd|cad)\b|[$£€]`)
	reAmount = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{2})\b|\b\d+\.\d{2}\b`)
)

// heuristicConfidence scores text that arrived without backend confidences.
// Starting from a low floor, each receipt marker raises the score: a date in
// slash/hyphen or ISO form, a currency cue (CAD/USD code or a $, £, or €
// symbol), and a cents-precision amount. Longer text earns a small bump.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2)
	if reDate.MatchString(txtL) {
		score += 0.2
	}
	if reCurr.MatchString(txtL) {
		score += 0.15
	}
	if reAmount.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
