package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pocketledger/receipt-ocr/constants"
	"github.com/pocketledger/receipt-ocr/internal/entity"
)

// BuildReceiptSchema returns a JSON-Schema (draft 2020-12 subset) for the
// assembled record as a generic map. Monetary fields must be non-negative and
// the category must come from the closed set.
func BuildReceiptSchema() map[string]any {
	money := map[string]any{"type": "number", "minimum": 0.0}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"merchant_name":  map[string]any{"type": "string", "minLength": 1},
			"address":        map[string]any{"type": "string"},
			"phone":          map[string]any{"type": "string"},
			"subtotal":       money,
			"tax":            money,
			"tip":            money,
			"total":          money,
			"amount":         money,
			"payment_method": map[string]any{"type": "string"},
			"category": map[string]any{
				"type": "string",
				"enum": constants.AsStringSlice(),
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":     map[string]any{"type": "string", "minLength": 1},
						"price":    map[string]any{"type": "number", "exclusiveMinimum": 0.0},
						"quantity": map[string]any{"type": "integer", "minimum": 1},
					},
					"required": []string{"name", "price", "quantity"},
				},
			},
		},
	}
}

var (
	schemaOnce     sync.Once
	receiptSchema  *jsonschema.Schema
	schemaCompiled error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		b, err := json.Marshal(BuildReceiptSchema())
		if err != nil {
			schemaCompiled = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("receipt.json", bytes.NewReader(b)); err != nil {
			schemaCompiled = fmt.Errorf("add schema: %w", err)
			return
		}
		receiptSchema, schemaCompiled = compiler.Compile("receipt.json")
	})
	return receiptSchema, schemaCompiled
}

// CheckSchema validates the marshaled record against the receipt schema and
// returns violations as human-readable issues. Structural violations do not
// change the numeric confidence; they only surface in the issue list.
func CheckSchema(data entity.ExtractedReceiptData) []string {
	schema, err := compiledSchema()
	if err != nil {
		return []string{fmt.Sprintf("schema unavailable: %v", err)}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return []string{fmt.Sprintf("record not serializable: %v", err)}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{fmt.Sprintf("record not serializable: %v", err)}
	}
	if err := schema.Validate(v); err != nil {
		return []string{fmt.Sprintf("record does not match schema: %v", err)}
	}
	return nil
}
