package bsonschema

// The catalog maps each extended type name to the JSON Schema fragment for
// its wire shape.  Every fragment pins additionalProperties to false so a
// malformed or ambiguous tagged object fails validation instead of passing
// as some other type.

var typeSchemas = map[string]map[string]any{
	"Date": {
		"type": "object",
		"properties": map[string]any{
			"$date": map[string]any{"type": "string"},
		},
		"required":             []any{"$date"},
		"additionalProperties": false,
	},
	"DBRef": {
		"type": "object",
		"properties": map[string]any{
			"$ref": map[string]any{"type": "string"},
			// $id may be any type, including another extended type.
			"$id": map[string]any{},
		},
		"required":             []any{"$ref"},
		"additionalProperties": false,
	},
	"MaxKey": {
		"type": "object",
		"properties": map[string]any{
			"$maxKey": map[string]any{"type": "number", "const": 1},
		},
		"required":             []any{"$maxKey"},
		"additionalProperties": false,
	},
	"MinKey": {
		"type": "object",
		"properties": map[string]any{
			"$minKey": map[string]any{"type": "number", "const": 1},
		},
		"required":             []any{"$minKey"},
		"additionalProperties": false,
	},
	"Long": {
		"type": "object",
		"properties": map[string]any{
			"$numberLong": map[string]any{"type": "string"},
		},
		"required":             []any{"$numberLong"},
		"additionalProperties": false,
	},
	"ObjectId": {
		"type": "object",
		"properties": map[string]any{
			"$oid": map[string]any{"type": "string"},
		},
		"required":             []any{"$oid"},
		"additionalProperties": false,
	},
	"Regex": {
		"type": "object",
		"properties": map[string]any{
			"$regex":   map[string]any{"type": "string"},
			"$options": map[string]any{"type": "string"},
		},
		"required":             []any{"$regex"},
		"additionalProperties": false,
	},
	"Timestamp": {
		"type": "object",
		"properties": map[string]any{
			"$timestamp": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"t": map[string]any{"type": "number"},
					"i": map[string]any{"type": "number"},
				},
				"required":             []any{"t", "i"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"$timestamp"},
		"additionalProperties": false,
	},
	"Undefined": {
		"type": "object",
		"properties": map[string]any{
			"$undefined": map[string]any{"type": "boolean"},
		},
		"required":             []any{"$undefined"},
		"additionalProperties": false,
	},
}

// TypeSchema returns a copy of the wire-shape schema fragment for the named
// extended type.  The second return is false for names outside the catalog.
// Callers get a fresh copy each call; the catalog itself is never exposed.
func TypeSchema(name string) (map[string]any, bool) {
	frag, ok := typeSchemas[name]
	if !ok {
		return nil, false
	}
	return deepCopyMap(frag), true
}

func deepCopyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		return deepCopyMap(vv)
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
