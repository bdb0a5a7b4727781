package bsonschema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// SchemaError records a failure inside Validate that is not an ordinary
// validation result: the rewritten schema did not compile, or the
// validation engine faulted.  Its message embeds the serialized schema, the
// serialized document and the underlying cause as one combined diagnostic.
type SchemaError struct {
	Schema any
	Doc    any
	Err    error
}

func (se *SchemaError) Error() string {
	return fmt.Sprintf("invalid schema %s for document %s: %v",
		jsonText(se.Schema), jsonText(Encode(se.Doc)), se.Err)
}

func (se *SchemaError) Unwrap() error { return se.Err }

// jsonText renders v for diagnostics, falling back to fmt on marshal
// failure so Error never fails.
func jsonText(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
