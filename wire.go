// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonschema

import (
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Encode converts a document value to its extended JSON wire form: every
// extended-type instance becomes its single-key tagged object, containers
// are rebuilt recursively, and plain JSON scalars pass through.  The result
// contains only maps, slices and plain scalars, suitable for any JSON
// consumer.  The input is never mutated.
func Encode(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = Encode(e)
		}
		return out
	case primitive.M:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = Encode(e)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(vv))
		for _, e := range vv {
			out[e.Key] = Encode(e.Value)
		}
		return out
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = Encode(e)
		}
		return out
	case primitive.A:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = Encode(e)
		}
		return out
	case primitive.DateTime:
		return map[string]any{"$date": vv.Time().UTC().Format(time.RFC3339Nano)}
	case time.Time:
		return map[string]any{"$date": vv.UTC().Format(time.RFC3339Nano)}
	case DBRef:
		out := map[string]any{"$ref": vv.Ref}
		if vv.ID != nil {
			out["$id"] = Encode(vv.ID)
		}
		return out
	case primitive.MaxKey:
		return map[string]any{"$maxKey": 1}
	case primitive.MinKey:
		return map[string]any{"$minKey": 1}
	case int64:
		return map[string]any{"$numberLong": strconv.FormatInt(vv, 10)}
	case primitive.ObjectID:
		return map[string]any{"$oid": vv.Hex()}
	case primitive.Regex:
		return map[string]any{"$regex": vv.Pattern, "$options": vv.Options}
	case primitive.Timestamp:
		return map[string]any{"$timestamp": map[string]any{"t": int(vv.T), "i": int(vv.I)}}
	case primitive.Undefined:
		return map[string]any{"$undefined": true}
	default:
		return v
	}
}

// Wire tag keys recognized by Decode.  $ref and $regex are reconstructed
// directly because the driver's extended JSON parser handles neither DBRef
// documents nor the legacy $regex/$options form.
var wireTags = []string{
	"$date",
	"$maxKey",
	"$minKey",
	"$numberLong",
	"$oid",
	"$timestamp",
	"$undefined",
}

// Decode is the inverse of Encode: it walks a wire-form document and
// replaces every single-key tagged object with the corresponding typed
// value, reconstructing through the MongoDB extended JSON decoder.  Maps
// without a recognized tag key recurse field-wise; a malformed tagged
// object (for example an $oid with invalid hex) returns the decoder's
// error.
func Decode(v any) (any, error) {
	switch vv := v.(type) {
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			d, err := Decode(e)
			if err != nil {
				return nil, err
			}
			out[i] = d
		}
		return out, nil
	case map[string]any:
		if ref, ok := vv["$ref"].(string); ok {
			id, err := Decode(vv["$id"])
			if err != nil {
				return nil, err
			}
			return DBRef{Ref: ref, ID: id}, nil
		}
		// Legacy regular expression form; only a string $regex counts, a
		// document $regex is a query operator.
		if pattern, ok := vv["$regex"].(string); ok {
			options, _ := vv["$options"].(string)
			return primitive.Regex{Pattern: pattern, Options: options}, nil
		}
		for _, tag := range wireTags {
			if _, ok := vv[tag]; ok {
				return decodeWire(vv)
			}
		}
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			d, err := Decode(e)
			if err != nil {
				return nil, err
			}
			out[k] = d
		}
		return out, nil
	default:
		return v, nil
	}
}

// decodeWire feeds a single tagged object through the driver's relaxed
// extended JSON parser.  The value is wrapped in a document because the
// parser only accepts documents at the top level.
func decodeWire(m map[string]any) (any, error) {
	raw, err := json.Marshal(map[string]any{"v": m})
	if err != nil {
		return nil, err
	}
	var out struct {
		V any `bson:"v"`
	}
	if err := bson.UnmarshalExtJSON(raw, false, &out); err != nil {
		return nil, err
	}
	return out.V, nil
}
