// Package ocr obtains raw receipt text from one of two interchangeable
// backends: a cloud vision text-detection call, or a local simulated
// generator used when the cloud path is unconfigured or fails.
package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pocketledger/receipt-ocr/internal/common"
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Backend turns an image into raw OCR text plus a backend-reported confidence.
type Backend interface {
	Extract(ctx context.Context, image []byte) (entity.RawOCROutput, error)
}

// Engine is the backend adapter. When a cloud backend is configured it is
// attempted first; on any cloud failure the engine falls back to the
// simulated backend exactly once, never retrying the cloud call.
type Engine struct {
	cloud     Backend // nil when no API credential is configured
	simulated Backend
	logger    *slog.Logger
}

// NewEngine wires backends from configuration. Presence of the vision API key
// toggles cloud eligibility; the simulated backend is always available.
func NewEngine(cfg *common.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		simulated: NewSimulatedBackend(cfg.Simulated.Delay, logger),
		logger:    logger,
	}
	if cfg.Vision.APIKey != "" {
		e.cloud = NewVisionClient(cfg.Vision, logger)
	}
	return e
}

// NewEngineWithBackends is the explicit-constructor form used by tests and
// callers that bring their own backends. cloud may be nil.
func NewEngineWithBackends(cloud, simulated Backend, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cloud: cloud, simulated: simulated, logger: logger}
}

// Extract runs the fallback order: cloud first when configured, then the
// simulated backend. The only terminal failure is no text from any backend.
func (e *Engine) Extract(ctx context.Context, image []byte) (entity.RawOCROutput, error) {
	start := time.Now()
	var warnings []string

	if e.cloud != nil {
		out, err := e.cloud.Extract(ctx, image)
		if err == nil && strings.TrimSpace(out.Text) != "" {
			out.Elapsed = time.Since(start)
			out.Warnings = warnings
			return out, nil
		}
		if err != nil {
			e.logger.Warn("ocr.cloud.failed; falling back to simulated backend", "error", err)
			warnings = append(warnings, "cloud backend failed: "+err.Error())
		} else {
			e.logger.Warn("ocr.cloud.empty; falling back to simulated backend")
			warnings = append(warnings, "cloud backend returned no text")
		}
	}

	out, err := e.simulated.Extract(ctx, image)
	if err != nil {
		return entity.RawOCROutput{}, common.NewAppError("OCR_NO_TEXT", "simulated backend failed", common.ErrNoText)
	}
	if strings.TrimSpace(out.Text) == "" {
		return entity.RawOCROutput{}, common.NewAppError("OCR_NO_TEXT", "no backend produced any text", common.ErrNoText)
	}
	out.Elapsed = time.Since(start)
	out.Warnings = warnings
	return out, nil
}
