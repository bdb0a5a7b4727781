// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bsonschema validates and coerces documents that mix plain JSON
// values with MongoDB Extended JSON types (object IDs, dates, 64-bit
// integers, regular expressions, timestamps, min/max keys, DB references
// and the undefined marker).  Each extended type travels on the wire as a
// single-key object tagged with a `$`-prefixed field, e.g. {"$oid": "..."}.
//
// # Shorthand Schemas
//
// A shorthand schema is an ordinary JSON-Schema-like structure in which a
// node may name an extended type directly, e.g. {"type": "ObjectId"},
// instead of spelling out its wire shape.  ToJSONSchema expands every such
// reference into the strict wire-shape fragment from the built-in catalog,
// producing a concrete schema that any standard JSON Schema validator can
// consume.  Type names outside the catalog pass through untouched, so a
// shorthand schema degrades gracefully to plain JSON Schema.
//
// # Coercion
//
// Coerce walks a document in lock-step with its shorthand schema and
// converts plain string leaves into the values the schema declares: JSON
// literal parsing for "number", "integer" and "boolean", and reconstruction
// through the MongoDB extended JSON decoder for "ObjectId" and "Date".
// This is intended for documents decoded from string-only sources such as
// query parameters or HTML forms.  Containers are rebuilt, never mutated.
//
// # Validation
//
// Validate expands the shorthand schema, compiles it, and checks the
// document, reporting {Valid, Error} with the first diagnostic on ordinary
// validation failure.  A malformed schema or a validator fault is reported
// separately as a *SchemaError carrying the serialized schema, the
// serialized document and the underlying cause.
package bsonschema
