package bsonschema

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var typedInstances = []struct {
	label string
	value any
	typ   Type
}{
	{"Date", primitive.NewDateTimeFromTime(time.Unix(1577836800, 0)), TypeDate},
	{"DBRef", DBRef{Ref: "users"}, TypeDBRef},
	{"MaxKey", primitive.MaxKey{}, TypeMaxKey},
	{"MinKey", primitive.MinKey{}, TypeMinKey},
	{"Long", int64(42), TypeLong},
	{"ObjectId", primitive.NewObjectID(), TypeObjectID},
	{"Regex", primitive.Regex{Pattern: "^a", Options: "i"}, TypeRegex},
	{"Timestamp", primitive.Timestamp{T: 42, I: 1}, TypeTimestamp},
	{"Undefined", primitive.Undefined{}, TypeUndefined},
}

var predicates = map[Type]func(any) bool{
	TypeDate:      IsDate,
	TypeDBRef:     IsDBRef,
	TypeMaxKey:    IsMaxKey,
	TypeMinKey:    IsMinKey,
	TypeLong:      IsLong,
	TypeObjectID:  IsObjectID,
	TypeRegex:     IsRegex,
	TypeTimestamp: IsTimestamp,
	TypeUndefined: IsUndefined,
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	for _, c := range typedInstances {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()

			typ, ok := TypeOf(c.value)
			if !ok || typ != c.typ {
				t.Errorf("TypeOf(%#v) = (%v, %v), expected (%v, true)", c.value, typ, ok, c.typ)
			}
			if typ.String() != c.label {
				t.Errorf("Type.String() = %q, expected %q", typ.String(), c.label)
			}
			for other, pred := range predicates {
				want := other == c.typ
				if pred(c.value) != want {
					t.Errorf("predicate for %v on a %v value returned %v", other, c.typ, !want)
				}
			}
		})
	}
}

func TestPredicatesPlainValues(t *testing.T) {
	t.Parallel()

	plain := []struct {
		label string
		value any
	}{
		{"nil", nil},
		{"string", "507f1f77bcf86cd799439011"},
		{"number", 3.14},
		{"int", 7},
		{"bool", true},
		{"plain object", map[string]any{"a": 1}},
		{"array", []any{1, 2}},
		// Wire forms are plain objects, not live instances.
		{"oid wire form", map[string]any{"$oid": "507f1f77bcf86cd799439011"}},
		{"undefined wire form", map[string]any{"$undefined": true}},
	}

	for _, c := range plain {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()

			if typ, ok := TypeOf(c.value); ok {
				t.Errorf("TypeOf(%#v) = (%v, true), expected no extended type", c.value, typ)
			}
			for other, pred := range predicates {
				if pred(c.value) {
					t.Errorf("predicate for %v returned true on %s", other, c.label)
				}
			}
		})
	}
}

func TestDateAcceptsTime(t *testing.T) {
	t.Parallel()

	if !IsDate(time.Unix(0, 0)) {
		t.Error("expected time.Time to count as a Date instance")
	}
}
