package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"correctIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
			"difficulty":   map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"text", "options", "correctIndex"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %v", schema.Type)
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}

	opts := schema.Properties["options"]
	if opts == nil {
		t.Fatal("missing options property")
	}
	if opts.Type != genai.TypeArray {
		t.Fatalf("expected array type for options, got %v", opts.Type)
	}
	if opts.Items == nil || opts.Items.Type != genai.TypeString {
		t.Fatal("expected string items for options")
	}
	if opts.MinItems == nil || *opts.MinItems != 4 {
		t.Fatal("expected minItems 4")
	}
	if opts.MaxItems == nil || *opts.MaxItems != 4 {
		t.Fatal("expected maxItems 4")
	}

	idx := schema.Properties["correctIndex"]
	if idx == nil || idx.Type != genai.TypeInteger {
		t.Fatal("expected integer correctIndex property")
	}
	if idx.Minimum == nil || *idx.Minimum != 0 {
		t.Fatal("expected minimum 0")
	}
	if idx.Maximum == nil || *idx.Maximum != 3 {
		t.Fatal("expected maximum 3")
	}

	diff := schema.Properties["difficulty"]
	if diff == nil || len(diff.Enum) != 3 {
		t.Fatal("expected difficulty enum with 3 values")
	}
}

func TestMapGeminiType(t *testing.T) {
	tests := []struct {
		input    string
		expected genai.Type
	}{
		{"string", genai.TypeString},
		{"integer", genai.TypeInteger},
		{"number", genai.TypeNumber},
		{"boolean", genai.TypeBoolean},
		{"array", genai.TypeArray},
		{"object", genai.TypeObject},
		{"weird", genai.TypeString},
	}
	for _, tt := range tests {
		if got := mapGeminiType(tt.input); got != tt.expected {
			t.Errorf("mapGeminiType(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
