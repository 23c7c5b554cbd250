package pagemeta

import (
	"github.com/spf13/cast"
	"github.com/sunwei/hugo-taxonomy/types"
)

// ValueKind is the shape of a front matter value.
type ValueKind int

const (
	// ValueNone is an absent (nil) value.
	ValueNone ValueKind = iota
	// ValueString is a single scalar: a string, number, bool or date.
	ValueString
	// ValueStrings is a sequence of scalars.
	ValueStrings
	// ValueOther is anything else, e.g. a map or a list of maps.
	ValueOther
)

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueString:
		return "string"
	case ValueStrings:
		return "strings"
	default:
		return "other"
	}
}

// Value is a front matter value classified by its shape.
type Value struct {
	kind    ValueKind
	raw     any
	strings []string
}

// ValueOf classifies v.
func ValueOf(v any) Value {
	if types.IsNil(v) {
		return Value{kind: ValueNone}
	}
	if types.IsScalar(v) {
		s, err := cast.ToStringE(v)
		if err != nil {
			return Value{kind: ValueOther, raw: v}
		}
		return Value{kind: ValueString, raw: v, strings: []string{s}}
	}
	ss, err := types.ToStringSlicePreserveStringE(v)
	if err != nil {
		return Value{kind: ValueOther, raw: v}
	}
	return Value{kind: ValueStrings, raw: v, strings: ss}
}

// Kind returns the shape of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsZero reports whether v is absent.
func (v Value) IsZero() bool {
	return v.kind == ValueNone
}

// IsList reports whether v is a single scalar or a sequence of scalars.
func (v Value) IsList() bool {
	return v.kind == ValueString || v.kind == ValueStrings
}

// Strings returns the scalars in v as strings, nil for ValueNone and
// ValueOther.
func (v Value) Strings() []string {
	if !v.IsList() {
		return nil
	}
	ss := make([]string, len(v.strings))
	copy(ss, v.strings)
	return ss
}

// Raw returns the value as it was found.
func (v Value) Raw() any {
	return v.raw
}
