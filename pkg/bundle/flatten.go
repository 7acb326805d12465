package bundle

import (
	"fmt"
	"strconv"
)

// Flatten maps dotted key paths under prefix to their values. Every level
// down to depth nested levels is kept, so with depth 1 {"a": {"b": 1}}
// yields "p.a" => {"b": 1} and "p.a.b" => 1. Lists are indexed by position.
func Flatten(prefix string, settings map[string]any, depth int) map[string]any {
	out := make(map[string]any)
	flatten(out, prefix, settings, depth)
	return out
}

func flatten(out map[string]any, prefix string, settings map[string]any, depth int) {
	for key, value := range settings {
		path := join(prefix, key)
		out[path] = value

		if depth <= 0 {
			continue
		}
		if nested, ok := asMap(value); ok {
			flatten(out, path, nested, depth-1)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// asMap normalizes the map and list shapes produced by viper and yaml.
func asMap(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return m, true
	case []any:
		m := make(map[string]any, len(v))
		for i, val := range v {
			m[strconv.Itoa(i)] = val
		}
		return m, true
	case []string:
		m := make(map[string]any, len(v))
		for i, val := range v {
			m[strconv.Itoa(i)] = val
		}
		return m, true
	default:
		return nil, false
	}
}
