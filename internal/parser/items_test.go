package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItemsBoundaries(t *testing.T) {
	lines := ClassifyLines("Widget $0.00\nWidget -$5.00\nWidget $5.00")

	items := ExtractItems(lines)

	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, 5.00, items[0].Price)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestExtractItemsThousandsSeparator(t *testing.T) {
	lines := ClassifyLines("Espresso Machine $1,234.56")

	items := ExtractItems(lines)

	require.Len(t, items, 1)
	assert.Equal(t, "Espresso Machine", items[0].Name)
	assert.Equal(t, 1234.56, items[0].Price)
}

func TestExtractItemsKeepsDuplicates(t *testing.T) {
	lines := ClassifyLines("Lumber 2x4 8ft $5.49\nLumber 2x4 8ft $5.49")

	items := ExtractItems(lines)

	require.Len(t, items, 2)
	assert.Equal(t, items[0], items[1])
}

func TestExtractItemsSkipsNoiseAndNonItems(t *testing.T) {
	lines := ClassifyLines("Subtotal $20.26\nVisa ****1234\nJust a plain line")

	items := ExtractItems(lines)

	assert.Empty(t, items)
}
