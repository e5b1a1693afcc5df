package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// Parameter readers used by handlers after schema validation has passed.
// They tolerate both native Go values (tests) and JSON-decoded values
// (float64 numbers, []any arrays).

// ReadString reads a string parameter.
func ReadString(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return strings.TrimSpace(s), nil
}

// ReadStringDefault reads a string parameter with a default value.
func ReadStringDefault(args map[string]any, key, defaultVal string) string {
	s, err := ReadString(args, key, false)
	if err != nil || s == "" {
		return defaultVal
	}
	return s
}

// ReadInt64 reads an integer parameter (identifiers are int64 throughout).
func ReadInt64(args map[string]any, key string, required bool) (int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return 0, fmt.Errorf("parameter %q is required", key)
		}
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parameter %q must be an integer", key)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("parameter %q must be an integer", key)
}

// ReadInt64Default reads an integer parameter with a default value.
func ReadInt64Default(args map[string]any, key string, defaultVal int64) int64 {
	n, err := ReadInt64(args, key, false)
	if err != nil || n == 0 {
		return defaultVal
	}
	return n
}

// ReadStringSlice reads a string array parameter.
func ReadStringSlice(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	switch arr := v.(type) {
	case []string:
		return arr
	case []any:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// ReadInt64Slice reads an integer array parameter.
func ReadInt64Slice(args map[string]any, key string) []int64 {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	switch arr := v.(type) {
	case []int64:
		return arr
	case []int:
		result := make([]int64, 0, len(arr))
		for _, n := range arr {
			result = append(result, int64(n))
		}
		return result
	case []any:
		result := make([]int64, 0, len(arr))
		for _, item := range arr {
			switch n := item.(type) {
			case float64:
				result = append(result, int64(n))
			case int:
				result = append(result, int64(n))
			case int64:
				result = append(result, n)
			}
		}
		return result
	}
	return nil
}
