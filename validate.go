// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonschema

import (
	"bytes"
	"errors"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Result reports the outcome of a Validate call.  Error is set only when
// Valid is false and carries the first reported diagnostic, not an
// exhaustive list.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate checks obj against a shorthand schema.  The schema is expanded
// with ToJSONSchema and compiled; obj is wire-encoded so that in-memory
// extended-type instances are checked against their catalog wire shapes.
//
// An ordinary validation failure is reported in the Result with a nil
// error.  A schema that does not compile, or a fault inside the validation
// engine, is reported as a *SchemaError instead; callers that only care
// about conformance can treat any non-nil error as "unable to validate".
func Validate(obj, schema any) (Result, error) {
	concrete := ToJSONSchema(schema)
	compiled, err := compileSchema(concrete)
	if err != nil {
		return Result{}, &SchemaError{Schema: concrete, Doc: obj, Err: err}
	}

	err = compiled.Validate(Encode(obj))
	if err == nil {
		return Result{Valid: true}, nil
	}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return Result{Valid: false, Error: firstIssue(verr)}, nil
	}
	// Anything else (infinite loop guard, unsupported value type) is an
	// engine fault, not a validation result.
	return Result{}, &SchemaError{Schema: concrete, Doc: obj, Err: err}
}

func compileSchema(concrete any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(concrete)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

// firstIssue descends to the first leaf cause, which carries the most
// specific message for the first reported issue.
func firstIssue(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	if verr.Message != "" {
		return verr.Message
	}
	return verr.Error()
}
