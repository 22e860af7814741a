package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/receipt-ocr/internal/common"
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

type stubBackend struct {
	out   entity.RawOCROutput
	err   error
	calls int
}

func (s *stubBackend) Extract(context.Context, []byte) (entity.RawOCROutput, error) {
	s.calls++
	return s.out, s.err
}

func TestEngineUsesCloudWhenItSucceeds(t *testing.T) {
	cloud := &stubBackend{out: entity.RawOCROutput{Text: "CLOUD TEXT", BackendConfidence: 0.95, Backend: entity.BackendCloudVision}}
	sim := &stubBackend{out: entity.RawOCROutput{Text: "SIM TEXT", Backend: entity.BackendSimulated}}
	e := NewEngineWithBackends(cloud, sim, nil)

	out, err := e.Extract(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, entity.BackendCloudVision, out.Backend)
	assert.Equal(t, "CLOUD TEXT", out.Text)
	assert.Empty(t, out.Warnings)
	assert.Zero(t, sim.calls)
}

func TestEngineFallsBackOnCloudError(t *testing.T) {
	cloud := &stubBackend{err: errors.New("network down")}
	sim := &stubBackend{out: entity.RawOCROutput{Text: "SIM TEXT", BackendConfidence: 0.6, Backend: entity.BackendSimulated}}
	e := NewEngineWithBackends(cloud, sim, nil)

	out, err := e.Extract(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, entity.BackendSimulated, out.Backend)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "cloud backend failed")
	// exactly one fallback, never a retry of the cloud call
	assert.Equal(t, 1, cloud.calls)
	assert.Equal(t, 1, sim.calls)
}

func TestEngineFallsBackOnEmptyCloudText(t *testing.T) {
	cloud := &stubBackend{out: entity.RawOCROutput{Text: "   ", Backend: entity.BackendCloudVision}}
	sim := &stubBackend{out: entity.RawOCROutput{Text: "SIM TEXT", Backend: entity.BackendSimulated}}
	e := NewEngineWithBackends(cloud, sim, nil)

	out, err := e.Extract(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, entity.BackendSimulated, out.Backend)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "no text")
}

func TestEngineNoTextIsTerminal(t *testing.T) {
	cloud := &stubBackend{err: errors.New("network down")}
	sim := &stubBackend{out: entity.RawOCROutput{Text: ""}}
	e := NewEngineWithBackends(cloud, sim, nil)

	_, err := e.Extract(context.Background(), []byte("img"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoText)
}

func TestEngineSkipsCloudWithoutCredential(t *testing.T) {
	cfg := &common.Config{} // no API key
	e := NewEngine(cfg, nil)

	assert.Nil(t, e.cloud)
	require.NotNil(t, e.simulated)

	out, err := e.Extract(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, entity.BackendSimulated, out.Backend)
}
