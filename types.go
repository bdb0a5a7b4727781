// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonschema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type identifies one of the extended types in the catalog.  TypeNone marks
// a plain JSON value.
type Type int

// Extended types, in catalog order.
const (
	TypeNone Type = iota
	TypeDate
	TypeDBRef
	TypeMaxKey
	TypeMinKey
	TypeLong
	TypeObjectID
	TypeRegex
	TypeTimestamp
	TypeUndefined
)

var typeNames = map[Type]string{
	TypeNone:      "",
	TypeDate:      "Date",
	TypeDBRef:     "DBRef",
	TypeMaxKey:    "MaxKey",
	TypeMinKey:    "MinKey",
	TypeLong:      "Long",
	TypeObjectID:  "ObjectId",
	TypeRegex:     "Regex",
	TypeTimestamp: "Timestamp",
	TypeUndefined: "Undefined",
}

// String returns the catalog name of the type, or "" for TypeNone.
func (t Type) String() string { return typeNames[t] }

// DBRef is a reference to a document in another collection.  The MongoDB Go
// driver has no value type for {"$ref": ..., "$id": ...} documents, so one
// is defined here.  ID may hold any document value, including another
// extended type.
type DBRef struct {
	Ref string `bson:"$ref" json:"$ref"`
	ID  any    `bson:"$id,omitempty" json:"$id,omitempty"`
}

// TypeOf reports the extended type of a runtime value.  The second return is
// false for plain JSON values (strings, numbers other than int64, booleans,
// nil, maps, slices).  The switch is exhaustive over the catalog: Date
// values may be primitive.DateTime or time.Time, Long values are int64, and
// the remaining types are the driver's primitive values.
func TypeOf(v any) (Type, bool) {
	switch v.(type) {
	case primitive.DateTime, time.Time:
		return TypeDate, true
	case DBRef:
		return TypeDBRef, true
	case primitive.MaxKey:
		return TypeMaxKey, true
	case primitive.MinKey:
		return TypeMinKey, true
	case int64:
		return TypeLong, true
	case primitive.ObjectID:
		return TypeObjectID, true
	case primitive.Regex:
		return TypeRegex, true
	case primitive.Timestamp:
		return TypeTimestamp, true
	case primitive.Undefined:
		return TypeUndefined, true
	default:
		return TypeNone, false
	}
}

// IsDate reports whether v is a date value.
func IsDate(v any) bool { t, _ := TypeOf(v); return t == TypeDate }

// IsDBRef reports whether v is a DBRef value.
func IsDBRef(v any) bool { t, _ := TypeOf(v); return t == TypeDBRef }

// IsMaxKey reports whether v is the max-key sentinel.
func IsMaxKey(v any) bool { t, _ := TypeOf(v); return t == TypeMaxKey }

// IsMinKey reports whether v is the min-key sentinel.
func IsMinKey(v any) bool { t, _ := TypeOf(v); return t == TypeMinKey }

// IsLong reports whether v is a 64-bit integer value.
func IsLong(v any) bool { t, _ := TypeOf(v); return t == TypeLong }

// IsObjectID reports whether v is an object ID value.
func IsObjectID(v any) bool { t, _ := TypeOf(v); return t == TypeObjectID }

// IsRegex reports whether v is a regular expression value.
func IsRegex(v any) bool { t, _ := TypeOf(v); return t == TypeRegex }

// IsTimestamp reports whether v is a timestamp value.
func IsTimestamp(v any) bool { t, _ := TypeOf(v); return t == TypeTimestamp }

// IsUndefined reports whether v is the undefined marker itself, not its wire
// form {"$undefined": true}.
func IsUndefined(v any) bool { t, _ := TypeOf(v); return t == TypeUndefined }
