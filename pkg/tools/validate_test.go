package tools

import (
	"strings"
	"testing"
)

func personSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"first_name": map[string]any{"type": "string"},
			"last_name":  map[string]any{"type": "string"},
			"page_size":  map[string]any{"type": "integer", "default": 20},
			"parent_type": map[string]any{
				"type": "string",
				"enum": []string{"person", "organization", "opportunity"},
			},
		},
		"required":             []string{"last_name"},
		"additionalProperties": false,
	}
}

func TestValidateArgsMissingRequired(t *testing.T) {
	_, err := ValidateArgs(personSchema(), map[string]any{"first_name": "Ada"})
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	if !strings.Contains(err.Error(), "last_name") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}

func TestValidateArgsUnknownField(t *testing.T) {
	_, err := ValidateArgs(personSchema(), map[string]any{
		"last_name": "Lovelace",
		"surname":   "typo",
	})
	if err == nil {
		t.Fatal("expected error for unexpected field")
	}
	if !strings.Contains(err.Error(), "surname") {
		t.Fatalf("error should name the unexpected field: %v", err)
	}
}

func TestValidateArgsWrongType(t *testing.T) {
	_, err := ValidateArgs(personSchema(), map[string]any{
		"last_name": 42,
	})
	if err == nil {
		t.Fatal("expected error for wrong type")
	}

	_, err = ValidateArgs(personSchema(), map[string]any{
		"last_name": "Lovelace",
		"page_size": "twenty",
	})
	if err == nil {
		t.Fatal("expected error for non-integer page_size")
	}

	_, err = ValidateArgs(personSchema(), map[string]any{
		"last_name": "Lovelace",
		"page_size": 2.5,
	})
	if err == nil {
		t.Fatal("expected error for fractional page_size")
	}
}

func TestValidateArgsDefaultSubstitution(t *testing.T) {
	args, err := ValidateArgs(personSchema(), map[string]any{"last_name": "Lovelace"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["page_size"] != 20 {
		t.Fatalf("expected page_size default 20, got %v", args["page_size"])
	}
}

func TestValidateArgsExplicitValueWins(t *testing.T) {
	args, err := ValidateArgs(personSchema(), map[string]any{
		"last_name": "Lovelace",
		"page_size": 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["page_size"] != 50 {
		t.Fatalf("expected page_size 50, got %v", args["page_size"])
	}
}

func TestValidateArgsEnum(t *testing.T) {
	_, err := ValidateArgs(personSchema(), map[string]any{
		"last_name":   "Lovelace",
		"parent_type": "spaceship",
	})
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}

	args, err := ValidateArgs(personSchema(), map[string]any{
		"last_name":   "Lovelace",
		"parent_type": "person",
	})
	if err != nil {
		t.Fatalf("unexpected error for valid enum value: %v", err)
	}
	if args["parent_type"] != "person" {
		t.Fatalf("unexpected parent_type: %v", args["parent_type"])
	}
}

func TestValidateArgsJSONNumbers(t *testing.T) {
	// JSON decoding produces float64; integral values must pass.
	args, err := ValidateArgs(personSchema(), map[string]any{
		"last_name": "Lovelace",
		"page_size": float64(30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["page_size"] != float64(30) {
		t.Fatalf("unexpected page_size: %v", args["page_size"])
	}
}
