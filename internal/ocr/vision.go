package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/receipt-ocr/internal/common"
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// Wire shapes for the vision text-detection request/response. The first entry
// of textAnnotations is the full aggregate text; subsequent entries are
// individual tokens with optional per-token confidence.
type visionRequest struct {
	Requests []visionAnnotateRequest `json:"requests"`
}

type visionAnnotateRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type visionResponse struct {
	Responses []visionAnnotateResponse `json:"responses"`
}

type visionAnnotateResponse struct {
	TextAnnotations []visionTextAnnotation `json:"textAnnotations"`
	Error           *visionError           `json:"error,omitempty"`
}

type visionTextAnnotation struct {
	Description string  `json:"description"`
	Confidence  float32 `json:"confidence,omitempty"`
}

type visionError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// VisionClient issues a single JSON POST per image against a vision-style
// text-detection endpoint. Any transport error, non-2xx status, error body,
// or empty detection is a recoverable failure for the caller to handle.
type VisionClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *slog.Logger
}

func NewVisionClient(cfg common.VisionConfig, logger *slog.Logger) *VisionClient {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &VisionClient{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (c *VisionClient) Extract(ctx context.Context, image []byte) (entity.RawOCROutput, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body := visionRequest{
		Requests: []visionAnnotateRequest{{
			Image:    visionImage{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []visionFeature{{Type: "TEXT_DETECTION", MaxResults: 1}},
		}},
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return entity.RawOCROutput{}, common.WrapError(err, "encode json")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(bs))
	if err != nil {
		return entity.RawOCROutput{}, common.WrapError(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("ocr.vision.request",
		"req_id", reqID,
		"content_length", len(bs),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("ocr.vision.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return entity.RawOCROutput{}, common.WrapError(err, "vision request")
	}
	defer func(b io.ReadCloser) {
		if cerr := b.Close(); cerr != nil {
			c.logger.Warn("ocr.vision.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("ocr.vision.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return entity.RawOCROutput{}, fmt.Errorf("%w: non-2xx status: %d", common.ErrBackend, resp.StatusCode)
	}

	var decoded visionResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return entity.RawOCROutput{}, common.WrapError(err, "decode response")
	}
	if len(decoded.Responses) == 0 {
		return entity.RawOCROutput{}, fmt.Errorf("%w: empty response body", common.ErrBackend)
	}
	ann := decoded.Responses[0]
	if ann.Error != nil {
		return entity.RawOCROutput{}, fmt.Errorf("%w: vision error %d: %s", common.ErrBackend, ann.Error.Code, ann.Error.Message)
	}
	if len(ann.TextAnnotations) == 0 || ann.TextAnnotations[0].Description == "" {
		return entity.RawOCROutput{}, fmt.Errorf("%w: no text detected", common.ErrBackend)
	}

	return entity.RawOCROutput{
		Text:              ann.TextAnnotations[0].Description,
		BackendConfidence: tokenMeanConfidence(ann.TextAnnotations),
		Backend:           entity.BackendCloudVision,
		Elapsed:           time.Since(start),
	}, nil
}
