package validation

import (
	"strings"
	"testing"
)

const validCatalogJSON = `{
	"version": "1",
	"balance": {"base_harmony_rate": 0.1, "base_essence_rate": 0.05, "reward_threshold": 100},
	"tiers": [{"id": "ball", "order": 0, "required_harmony": 0}],
	"rewards": [{"id": "cookie_1", "issuance_order": 0, "essence_yield": 5}],
	"upgrades": [{"id": "mat", "cost": 10, "harmony_boost": 0.1}]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid catalog",
			data: validCatalogJSON,
		},
		{
			name:      "missing tiers",
			data:      `{"balance": {"base_harmony_rate": 0, "base_essence_rate": 0, "reward_threshold": 1}, "rewards": [], "upgrades": []}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "empty tiers",
			data:      `{"balance": {"base_harmony_rate": 0, "base_essence_rate": 0, "reward_threshold": 1}, "tiers": [], "rewards": [], "upgrades": []}`,
			wantError: true,
			errorMsg:  "/tiers",
		},
		{
			name:      "zero reward threshold",
			data:      `{"balance": {"base_harmony_rate": 0, "base_essence_rate": 0, "reward_threshold": 0}, "tiers": [{"id": "a", "order": 0, "required_harmony": 0}], "rewards": [], "upgrades": []}`,
			wantError: true,
			errorMsg:  "exclusiveMinimum",
		},
		{
			name:      "negative cost",
			data:      `{"balance": {"base_harmony_rate": 0, "base_essence_rate": 0, "reward_threshold": 1}, "tiers": [{"id": "a", "order": 0, "required_harmony": 0}], "rewards": [], "upgrades": [{"id": "x", "cost": -1}]}`,
			wantError: true,
			errorMsg:  "/upgrades/0/cost",
		},
		{
			name:      "unknown field",
			data:      `{"balance": {"base_harmony_rate": 0, "base_essence_rate": 0, "reward_threshold": 1}, "tiers": [{"id": "a", "order": 0, "required_harmony": 0, "colour": "red"}], "rewards": [], "upgrades": []}`,
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name:      "invalid JSON",
			data:      `{"balance": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), CatalogSchema)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateDocument_IntegerNumbers(t *testing.T) {
	validator := NewSchemaValidator()

	// Decoders such as YAML produce int values rather than float64.
	doc := map[string]interface{}{
		"balance": map[string]interface{}{
			"base_harmony_rate": 1,
			"base_essence_rate": 0,
			"reward_threshold":  50,
		},
		"tiers":    []interface{}{map[string]interface{}{"id": "a", "order": 0, "required_harmony": 0}},
		"rewards":  []interface{}{},
		"upgrades": []interface{}{},
	}

	if err := validator.ValidateDocument(doc, CatalogSchema); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	if err == nil {
		t.Fatal("Expected error for unknown schema")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	for i := 0; i < 3; i++ {
		if err := v.ValidateBytes([]byte(validCatalogJSON), CatalogSchema); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected one cached schema, got %d", len(v.schemas))
	}
}
