package ocr

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Receipt templates for the simulated backend: grocery, quick-service
// restaurant, hardware retailer. {{DATE}} is stamped at extraction time.
var simulatedTemplates = []string{
	`SOBEYS GROCERY STORE
123 Main Street
Toronto, ON M5V 2T6
Tel: (416) 555-0123
Date: {{DATE}}  Time: 14:32
--------------------------------
Bananas 1.5kg $2.49
Milk 2% 4L $6.99
Bread Whole Wheat $3.49
Chicken Breast $12.99
Eggs Large Dozen $4.99
--------------------------------
Subtotal $30.95
HST (13%) $4.02
Total $34.97
Payment: Debit Card
Card: ****5678
Thank you for shopping with us!`,

	`TIM HORTONS #4521
456 Queen Street West
Toronto, ON
Phone: 416-555-0199
Date: {{DATE}}
================================
Medium Double Double $2.19
Breakfast Sandwich $4.49
Hash Brown $1.99
================================
Subtotal $8.67
HST $1.13
Total $9.80
Visa ****1234
Thank you! Please visit again`,

	`HOME DEPOT
789 Industrial Ave
Mississauga, ON L5T 2C9
Tel: 905-555-0147
Date: {{DATE}} Time: 10:05
Transaction #: 58291
--------------------------------
Deck Screws 100pk $9.97
Lumber 2x4 8ft $5.49
Lumber 2x4 8ft $5.49
Wood Glue $6.99
Paint Brush Set $14.99
--------------------------------
Subtotal $42.93
HST (13%) $5.58
Total $48.51
Credit Card
Card: ****9012
Thank you for shopping at Home Depot`,
}

// SimulatedBackend deterministically selects a template from the image bytes
// and models real latency with an artificial delay. It always succeeds.
type SimulatedBackend struct {
	delay  time.Duration
	now    func() time.Time
	logger *slog.Logger
}

func NewSimulatedBackend(delay time.Duration, logger *slog.Logger) *SimulatedBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulatedBackend{delay: delay, now: time.Now, logger: logger}
}

func (s *SimulatedBackend) Extract(_ context.Context, image []byte) (entity.RawOCROutput, error) {
	start := s.now()
	if s.delay > 0 {
		// no cancellation semantics: once issued, the delay runs to completion
		time.Sleep(s.delay)
	}

	text := strings.ReplaceAll(selectTemplate(image), "{{DATE}}", s.now().Format("01/02/2006"))

	s.logger.Debug("ocr.simulated.ok",
		"template_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return entity.RawOCROutput{
		Text:              text,
		BackendConfidence: heuristicConfidence(text),
		Backend:           entity.BackendSimulated,
		Elapsed:           time.Since(start),
	}, nil
}

// selectTemplate hashes the image bytes so the same image always yields the
// same template.
func selectTemplate(image []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(image)
	return simulatedTemplates[h.Sum32()%uint32(len(simulatedTemplates))]
}
