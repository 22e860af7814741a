// Package validate scores an assembled receipt record for completeness and
// plausibility. The validator never mutates the record it scores; reports are
// recomputed on demand and never stored back into the record.
package validate

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Fixed additive penalties, applied in evaluation order.
const (
	penaltyMissingMerchant = 0.2
	penaltyShortMerchant   = 0.1
	penaltyMissingTotal    = 0.3
	penaltyNonPositive     = 0.2
	penaltyImplausibleHigh = 0.1
	penaltyStaleDate       = 0.1
	penaltyNoItems         = 0.2
	penaltyBadItemsScale   = 0.2

	maxPlausibleTotal = 10000
)

// Validator holds the acceptance threshold supplied by deployment
// configuration; the threshold is not part of the scoring logic itself.
type Validator struct {
	Threshold float32
	Now       func() time.Time
	Logger    *slog.Logger
}

func NewValidator(threshold float32, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{Threshold: threshold, Now: time.Now, Logger: logger}
}

// Validate starts at confidence 1.0 and subtracts fixed penalties, clamped to
// zero. Issues are listed in the order evaluated.
func (v *Validator) Validate(data entity.ExtractedReceiptData) entity.ValidationReport {
	confidence := float32(1.0)
	var issues []string

	if data.MerchantName == nil {
		confidence -= penaltyMissingMerchant
		issues = append(issues, "merchant name could not be extracted")
	} else if len(strings.TrimSpace(*data.MerchantName)) < 2 {
		confidence -= penaltyShortMerchant
		issues = append(issues, "merchant name is too short")
	}

	total, ok := data.EffectiveTotal()
	if !ok {
		confidence -= penaltyMissingTotal
		issues = append(issues, "no total amount found")
	} else if total <= 0 {
		confidence -= penaltyNonPositive
		issues = append(issues, "total amount is not positive")
	} else if total > maxPlausibleTotal {
		confidence -= penaltyImplausibleHigh
		issues = append(issues, fmt.Sprintf("total amount %.2f is implausibly large", total))
	}

	if data.Date != nil {
		now := v.Now()
		oneYearAgo := now.AddDate(-1, 0, 0)
		weekAhead := now.AddDate(0, 0, 7)
		if data.Date.Before(oneYearAgo) || data.Date.After(weekAhead) {
			confidence -= penaltyStaleDate
			issues = append(issues, "transaction date is outside the expected window")
		}
	}

	if len(data.Items) == 0 {
		confidence -= penaltyNoItems
		issues = append(issues, "no items extracted")
	} else {
		invalid := 0
		for _, item := range data.Items {
			if len(strings.TrimSpace(item.Name)) < 2 || item.Price <= 0 {
				invalid++
			}
		}
		if invalid > 0 {
			fraction := float32(invalid) / float32(len(data.Items))
			confidence -= fraction * penaltyBadItemsScale
			issues = append(issues, fmt.Sprintf("%d of %d items look invalid", invalid, len(data.Items)))
		}
	}

	if schemaIssues := CheckSchema(data); len(schemaIssues) > 0 {
		issues = append(issues, schemaIssues...)
	}

	if confidence < 0 {
		confidence = 0
	}

	report := entity.ValidationReport{
		IsValid:    confidence >= v.Threshold,
		Confidence: confidence,
		Issues:     issues,
	}
	v.Logger.Debug("validation complete",
		"confidence", report.Confidence,
		"is_valid", report.IsValid,
		"issues", len(report.Issues),
	)
	return report
}
