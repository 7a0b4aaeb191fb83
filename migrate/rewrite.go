package migrate

import (
	"bytes"
	"encoding/json"

	"github.com/tripledoublev/spores.garden-sub000/nsid"
)

// rewriteValue deep-copies a record payload onto the target namespace.
// Every $type field, at any depth, is remapped through the collection
// table, and every string that is an at:// record reference has its
// collection segment rewritten. All other fields pass through
// untouched, whatever their shape; payload schemas belong to the
// lexicons, not to the migration.
func rewriteValue(value map[string]any, target nsid.Namespace) map[string]any {
	if value == nil {
		return nil
	}
	out := make(map[string]any, len(value))
	for k, v := range value {
		if k == "$type" {
			if typ, ok := v.(string); ok {
				out[k] = nsid.MapCollection(typ, target)
				continue
			}
		}
		out[k] = rewriteAny(v, target)
	}
	return out
}

func rewriteAny(v any, target nsid.Namespace) any {
	switch t := v.(type) {
	case map[string]any:
		return rewriteValue(t, target)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = rewriteAny(e, target)
		}
		return out
	case string:
		return nsid.RewriteURI(t, target)
	default:
		return v
	}
}

// equalValues reports deep structural equality of two payloads,
// ignoring the top-level $type field. Comparison goes through JSON
// marshaling, which sorts object keys and normalizes numeric forms, so
// key order and int-versus-float representation never matter. Payloads
// that cannot marshal compare as different, which errs toward
// preserving both copies.
func equalValues(a, b map[string]any) bool {
	aj, err := json.Marshal(stripType(a))
	if err != nil {
		return false
	}
	bj, err := json.Marshal(stripType(b))
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

// stripType returns m without its top-level $type field. The input is
// not modified.
func stripType(m map[string]any) map[string]any {
	if _, ok := m["$type"]; !ok {
		return m
	}
	out := make(map[string]any, len(m)-1)
	for k, v := range m {
		if k != "$type" {
			out[k] = v
		}
	}
	return out
}
