package bsonschema

import (
	"testing"
)

func TestToJSONSchemaCatalog(t *testing.T) {
	t.Parallel()

	names := []string{
		"Date", "DBRef", "MaxKey", "MinKey", "Long",
		"ObjectId", "Regex", "Timestamp", "Undefined",
	}
	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			want, ok := TypeSchema(name)
			if !ok {
				t.Fatalf("no catalog entry for %q", name)
			}
			got := ToJSONSchema(map[string]any{"type": name})
			assertDeepEqual(t, got, want)
		})
	}
}

func TestTypeSchemaUnknown(t *testing.T) {
	t.Parallel()

	if frag, ok := TypeSchema("Binary"); ok || frag != nil {
		t.Errorf("expected no catalog entry for Binary, got %v", frag)
	}
}

func TestTypeSchemaReturnsCopies(t *testing.T) {
	t.Parallel()

	a, _ := TypeSchema("ObjectId")
	a["type"] = "mutated"
	a["properties"].(map[string]any)["$oid"].(map[string]any)["type"] = "mutated"

	b, _ := TypeSchema("ObjectId")
	if b["type"] != "object" {
		t.Error("catalog fragment was mutated through a returned copy")
	}
	if b["properties"].(map[string]any)["$oid"].(map[string]any)["type"] != "string" {
		t.Error("nested catalog fragment was mutated through a returned copy")
	}
}

func TestToJSONSchema(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		input any
		want  any
	}{
		{
			label: "sibling fields discarded on substitution",
			input: jsonValue(t, `{"type": "ObjectId", "description": "primary key"}`),
			want:  mustTypeSchema(t, "ObjectId"),
		},
		{
			label: "nested reference inside properties",
			input: jsonValue(t, `{"type": "object", "properties": {"_id": {"type": "ObjectId"}, "n": {"type": "number"}}}`),
			want: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"_id": mustTypeSchema(t, "ObjectId"),
					"n":   map[string]any{"type": "number"},
				},
			},
		},
		{
			label: "reference inside items",
			input: jsonValue(t, `{"type": "array", "items": {"type": "Date"}}`),
			want: map[string]any{
				"type":  "array",
				"items": mustTypeSchema(t, "Date"),
			},
		},
		{
			label: "array of schemas",
			input: jsonValue(t, `[{"type": "MinKey"}, {"type": "string"}]`),
			want:  []any{mustTypeSchema(t, "MinKey"), map[string]any{"type": "string"}},
		},
		{
			label: "unknown type passes through",
			input: jsonValue(t, `{"type": "Unicorn", "properties": {"a": {"type": "Long"}}}`),
			want: map[string]any{
				"type":       "Unicorn",
				"properties": map[string]any{"a": mustTypeSchema(t, "Long")},
			},
		},
		{
			label: "primitive node unchanged",
			input: "string",
			want:  "string",
		},
		{
			label: "nil unchanged",
			input: nil,
			want:  nil,
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			assertDeepEqual(t, ToJSONSchema(c.input), c.want)
		})
	}
}

// Rewriting a pure structural schema returns a deep-equal copy.
func TestToJSONSchemaIdempotent(t *testing.T) {
	t.Parallel()

	text := `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}},
			"age": {"type": "number"}
		},
		"required": ["name"]
	}`
	input := jsonValue(t, text)
	assertDeepEqual(t, ToJSONSchema(input), jsonValue(t, text))
}

func TestToJSONSchemaDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	text := `{"type": "object", "properties": {"_id": {"type": "ObjectId"}}}`
	input := jsonValue(t, text)

	out := ToJSONSchema(input)
	out.(map[string]any)["properties"].(map[string]any)["_id"].(map[string]any)["extra"] = true

	assertDeepEqual(t, input, jsonValue(t, text))
}

func mustTypeSchema(t *testing.T, name string) map[string]any {
	t.Helper()
	frag, ok := TypeSchema(name)
	if !ok {
		t.Fatalf("no catalog entry for %q", name)
	}
	return frag
}
