package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/pocketledger/receipt-ocr/internal/category"
	"github.com/pocketledger/receipt-ocr/internal/common"
	"github.com/pocketledger/receipt-ocr/internal/entity"
	"github.com/pocketledger/receipt-ocr/internal/ocr"
	"github.com/pocketledger/receipt-ocr/internal/pipeline"
	"github.com/pocketledger/receipt-ocr/internal/validate"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "scanreceipt <image-path>")
		os.Exit(2)
	}

	image, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read image", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	p := pipeline.NewProcessor(
		logger,
		ocr.NewEngine(cfg, logger),
		category.NewClassifier(),
		validate.NewValidator(cfg.Validation.ConfidenceThreshold, logger),
	)

	start := time.Now()
	result, report, err := p.Process(ctx, image)
	if err != nil {
		logger.Error("receipt scan failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("receipt scan OK",
		"backend", result.OCRMethod,
		"confidence", result.Confidence,
		"is_valid", report.IsValid,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out := struct {
		Result entity.OCRResult        `json:"result"`
		Report entity.ValidationReport `json:"report"`
	}{result, report}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
