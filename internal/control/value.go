// Package control implements the command surface the external
// framework uses to drive an l2table.Table and its classifier: add,
// delete, lookup, set_default_gate, and populate.
//
// Each command's argument arrives as a generic tagged value tree
// (leaves: int, str; composites: list, map) rather than a typed Go
// struct, because the spec treats the host framework's RPC message
// format as an external collaborator specified only at this shape.
package control

import "fmt"

// Kind tags the shape of a Value.
type Kind int

// Value kinds.
const (
	KindInt Kind = iota
	KindStr
	KindList
	KindMap
)

// Value is a tagged tree of int/str leaves and list/map composites,
// standing in for the host framework's command argument format.
type Value struct {
	kind Kind
	i    int64
	s    string
	list []Value
	m    map[string]Value
}

// Int wraps an integer leaf.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Str wraps a string leaf.
func Str(s string) Value { return Value{kind: KindStr, s: s} }

// List wraps a list composite.
func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// Map wraps a map composite.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind returns v's tag.
func (v Value) Kind() Kind { return v.kind }

// Int returns v's integer value and true if v is a KindInt.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Str returns v's string value and true if v is a KindStr.
func (v Value) Str() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.s, true
}

// List returns v's elements and true if v is a KindList.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// MapGet returns the value at key and true if v is a KindMap
// containing key.
func (v Value) MapGet(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	val, ok := v.m[key]
	return val, ok
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindStr:
		return v.s
	case KindList:
		return fmt.Sprintf("list(%d)", len(v.list))
	case KindMap:
		return fmt.Sprintf("map(%d)", len(v.m))
	default:
		return "invalid"
	}
}
