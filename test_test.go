package bsonschema

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
)

// jsonValue parses a JSON literal for use as a test document or schema.
func jsonValue(t *testing.T, text string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatalf("error decoding test input %q: %v", text, err)
	}
	return v
}

func assertDeepEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values don't match:\nGot:    %#v\nExpect: %#v", got, want)
	}
}
