package bsonschema

// ToJSONSchema expands a shorthand schema into a concrete JSON Schema.
// Wherever a node's "type" names an extended type, the whole node is
// replaced by the catalog fragment for that type; any sibling fields on the
// shorthand node are discarded.  All other structure is preserved: arrays
// are rewritten element-wise, objects field-wise, and scalars (including
// "type" values outside the catalog, assumed to be standard JSON Schema
// vocabulary like "string" or "object") pass through unchanged.
//
// The input is never mutated; every container in the result is freshly
// allocated.
func ToJSONSchema(node any) any {
	switch n := node.(type) {
	case []any:
		out := make([]any, len(n))
		for i, e := range n {
			out[i] = ToJSONSchema(e)
		}
		return out
	case map[string]any:
		if name, ok := n["type"].(string); ok {
			if frag, ok := TypeSchema(name); ok {
				return frag
			}
		}
		out := make(map[string]any, len(n))
		for k, v := range n {
			out[k] = ToJSONSchema(v)
		}
		return out
	default:
		return node
	}
}
