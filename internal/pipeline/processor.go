// Package pipeline coordinates the full per-image flow: backend adapter,
// line parsing, category classification, and quality validation.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/pocketledger/receipt-ocr/internal/category"
	"github.com/pocketledger/receipt-ocr/internal/entity"
	"github.com/pocketledger/receipt-ocr/internal/ocr"
	"github.com/pocketledger/receipt-ocr/internal/parser"
	"github.com/pocketledger/receipt-ocr/internal/validate"
)

// Processor is stateless per call; concurrent Process calls for different
// images need no coordination.
type Processor struct {
	Logger     *slog.Logger
	Engine     *ocr.Engine
	Classifier *category.Classifier
	Validator  *validate.Validator
}

func NewProcessor(logger *slog.Logger, engine *ocr.Engine, classifier *category.Classifier, validator *validate.Validator) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = category.NewClassifier()
	}
	return &Processor{Logger: logger, Engine: engine, Classifier: classifier, Validator: validator}
}

// Process runs the pipeline for one image and returns the result together
// with its quality report. The only error is total extraction failure; field
// misses surface as absent fields and reduced confidence, never as errors.
func (p *Processor) Process(ctx context.Context, image []byte) (entity.OCRResult, entity.ValidationReport, error) {
	start := time.Now()

	raw, err := p.Engine.Extract(ctx, image)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "err", err)
		return entity.OCRResult{}, entity.ValidationReport{}, err
	}
	p.Logger.Info("processor.ocr.ok",
		"backend", raw.Backend,
		"confidence", raw.BackendConfidence,
		"elapsed_ms", raw.Elapsed.Milliseconds(),
	)

	data := parser.Parse(raw.Text)

	merchant := ""
	if data.MerchantName != nil {
		merchant = *data.MerchantName
	}
	data.Category = p.Classifier.Classify(merchant, data.Items)

	report := p.Validator.Validate(data)
	p.Logger.Info("processor.parse.ok",
		"merchant", merchant,
		"items", len(data.Items),
		"is_valid", report.IsValid,
		"extraction_confidence", report.Confidence,
	)

	result := entity.OCRResult{
		Text:           raw.Text,
		Confidence:     raw.BackendConfidence,
		ExtractedData:  data,
		ProcessingTime: time.Since(start),
		OCRMethod:      raw.Backend,
	}
	return result, report, nil
}
