package repo

// Helpers for reading and copying record payloads. Payloads come off
// the wire as map[string]any, so field access needs the same defensive
// shape everywhere: nil maps, missing keys, and mismatched types all
// fall back to the default instead of panicking.

// CloneValue deep-copies a record payload. Nested objects and arrays
// are copied recursively; scalars are shared, which is safe because
// JSON scalars are immutable.
func CloneValue(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneValue(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	default:
		return v
	}
}

// GetString extracts a string field from a payload with a default
// fallback. Returns defaultVal if the map is nil, the key is absent,
// or the value is not a string.
func GetString(m map[string]any, key string, defaultVal string) string {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}

	str, ok := val.(string)
	if !ok {
		return defaultVal
	}

	return str
}

// GetMap extracts a nested object from a payload. Returns nil if the
// map is nil, the key is absent, or the value is not an object.
func GetMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}

	val, ok := m[key]
	if !ok || val == nil {
		return nil
	}

	nested, ok := val.(map[string]any)
	if !ok {
		return nil
	}

	return nested
}
