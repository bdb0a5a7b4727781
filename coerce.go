// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonschema

import (
	json "github.com/goccy/go-json"
)

// Coerce walks obj in lock-step with its shorthand schema and returns a new
// value in which plain string leaves have been converted to the types the
// schema declares.  A nil schema (or schema subtree) leaves the value
// untouched.  Arrays coerce every element against the schema's "items"
// node; objects coerce each entry against the matching "properties" node;
// a string leaf is converted according to the schema's "type":
//
//	"number", "integer", "boolean"  parsed as a JSON literal of that type
//	"ObjectId"                      decoded from the wire form {"$oid": s}
//	"Date"                          decoded from the wire form {"$date": s}
//
// Any other type name leaves the string as-is.  Non-string scalars and
// already-typed extended values always pass through unchanged.  Shape
// checks run before the type check, so an "object" schema is never applied
// to a string leaf.
//
// Parse failures (for example a "number" leaf that is not a valid JSON
// number, or an "ObjectId" leaf with invalid hex) surface directly as the
// underlying parser's error.  Containers are rebuilt, never mutated.
func Coerce(obj, schema any) (any, error) {
	if schema == nil {
		return obj, nil
	}
	node, _ := schema.(map[string]any)

	switch o := obj.(type) {
	case []any:
		// Arrays are homogeneous by convention; the same items node
		// applies to every element.
		var items any
		if node != nil {
			items = node["items"]
		}
		out := make([]any, len(o))
		for i, e := range o {
			c, err := Coerce(e, items)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		var props map[string]any
		if node != nil {
			props, _ = node["properties"].(map[string]any)
		}
		out := make(map[string]any, len(o))
		for k, v := range o {
			var child any
			if props != nil {
				child = props[k]
			}
			c, err := Coerce(v, child)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case string:
		var typ string
		if node != nil {
			typ, _ = node["type"].(string)
		}
		switch typ {
		case "number":
			var f float64
			if err := json.Unmarshal([]byte(o), &f); err != nil {
				return nil, err
			}
			return f, nil
		case "integer":
			// int, not int64: int64 is reserved for the Long extended type.
			var i int
			if err := json.Unmarshal([]byte(o), &i); err != nil {
				return nil, err
			}
			return i, nil
		case "boolean":
			var b bool
			if err := json.Unmarshal([]byte(o), &b); err != nil {
				return nil, err
			}
			return b, nil
		case "ObjectId":
			return Decode(map[string]any{"$oid": o})
		case "Date":
			return Decode(map[string]any{"$date": o})
		default:
			return o, nil
		}
	default:
		return obj, nil
	}
}
