package tools

import (
	"fmt"
	"math"
	"sort"
)

// ValidateArgs checks raw arguments against a tool's input schema map and
// returns a copy with declared defaults filled in. Schemas are closed shapes:
// properties not declared in the schema are rejected so that typo'd arguments
// fail before any network call. Only the schema subset the catalog actually
// uses is supported (object root, primitive property types, enum, required,
// default).
func ValidateArgs(schema map[string]any, raw map[string]any) (map[string]any, error) {
	props, _ := schema["properties"].(map[string]any)

	// Closed shape: reject unknown fields, deterministically picking the
	// first offender by name for stable error messages.
	var unknown []string
	for key := range raw {
		if _, ok := props[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unexpected parameter %q", unknown[0])
	}

	for _, key := range requiredKeys(schema) {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("missing required parameter %q", key)
		}
	}

	args := make(map[string]any, len(raw))
	for key, value := range raw {
		prop, _ := props[key].(map[string]any)
		if err := checkValue(key, prop, value); err != nil {
			return nil, err
		}
		args[key] = value
	}

	// Substitute declared defaults for absent optional properties.
	for key, p := range props {
		prop, _ := p.(map[string]any)
		if prop == nil {
			continue
		}
		if def, ok := prop["default"]; ok {
			if _, present := args[key]; !present {
				args[key] = def
			}
		}
	}
	return args, nil
}

func requiredKeys(schema map[string]any) []string {
	switch req := schema["required"].(type) {
	case []string:
		return req
	case []any:
		keys := make([]string, 0, len(req))
		for _, k := range req {
			if s, ok := k.(string); ok {
				keys = append(keys, s)
			}
		}
		return keys
	}
	return nil
}

func checkValue(key string, prop map[string]any, value any) error {
	if prop == nil || value == nil {
		return nil
	}

	typeName, _ := prop["type"].(string)
	switch typeName {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("parameter %q must be a string", key)
		}
	case "integer":
		if !isInteger(value) {
			return fmt.Errorf("parameter %q must be an integer", key)
		}
	case "number":
		if !isNumber(value) {
			return fmt.Errorf("parameter %q must be a number", key)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("parameter %q must be a boolean", key)
		}
	case "array":
		if _, ok := value.([]any); !ok {
			if !isTypedSlice(value) {
				return fmt.Errorf("parameter %q must be an array", key)
			}
		}
	case "":
		// Untyped property (e.g. a field value): anything goes.
	}

	if enum, ok := prop["enum"].([]string); ok {
		s, _ := value.(string)
		for _, allowed := range enum {
			if s == allowed {
				return nil
			}
		}
		return fmt.Errorf("parameter %q must be one of %v", key, enum)
	}
	return nil
}

// isInteger accepts native Go ints plus JSON numbers without a fraction.
func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int32, int64:
		return true
	case float64:
		return n == math.Trunc(n)
	case float32:
		return float64(n) == math.Trunc(float64(n))
	}
	return false
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

func isTypedSlice(v any) bool {
	switch v.(type) {
	case []string, []int, []int64, []float64:
		return true
	}
	return false
}
