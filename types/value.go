package types

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the zero Kind; the zero Value is Null.
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a node of a transaction parameter tree.
//
// INVARIANT: Object keys are unique; their insertion order carries no meaning.
//
// Protocol quantities (value, stepLimit, timestamp, nid, nonce, version) travel as
// "0x"-prefixed hex strings and must be stored with String, never Number.
type Value struct {
	kind Kind
	b    bool
	n    decimal.Decimal
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric Value.
func Number(d decimal.Decimal) Value {
	return Value{kind: KindNumber, n: d}
}

// Int returns a numeric Value holding an integer.
func Int(i int64) Value {
	return Number(decimal.NewFromInt(i))
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array returns an array Value holding a copy of elems.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// Object returns an empty object Value.
func Object() Value {
	return Value{kind: KindObject, obj: make(map[string]Value)}
}

// ObjectOf returns an object Value holding a copy of fields.
func ObjectOf(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// StringMap returns an object Value whose fields are all strings.
func StringMap(fields map[string]string) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = String(v)
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (decimal.Decimal, bool) {
	return v.n, v.kind == KindNumber
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// Elems returns the elements of an array Value. The slice must not be modified.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the number of elements or fields, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Get returns the field stored under key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	field, ok := v.obj[key]
	return field, ok
}

// Keys returns the object's keys in byte-wise lexicographic order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set stores field under key. Objects share their backing map, so the write is
// visible through every copy of v.
func (v Value) Set(key string, field Value) error {
	if v.kind != KindObject || v.obj == nil {
		return fmt.Errorf("%w: cannot set %q on %s", ErrMalformedValue, key, v.kind)
	}
	v.obj[key] = field
	return nil
}

// Delete removes key from an object. It is a no-op for other kinds.
func (v Value) Delete(key string) {
	if v.kind == KindObject {
		delete(v.obj, key)
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		arr := make([]Value, len(v.arr))
		for i, elem := range v.arr {
			arr[i] = elem.Clone()
		}
		return Value{kind: KindArray, arr: arr}
	case KindObject:
		obj := make(map[string]Value, len(v.obj))
		for k, field := range v.obj {
			obj[k] = field.Clone()
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return v
	}
}

// Without returns a shallow copy of an object Value with the given keys removed.
// Other kinds are returned unchanged.
func (v Value) Without(keys ...string) Value {
	if v.kind != KindObject {
		return v
	}
	obj := make(map[string]Value, len(v.obj))
	for k, field := range v.obj {
		obj[k] = field
	}
	for _, k := range keys {
		delete(obj, k)
	}
	return Value{kind: KindObject, obj: obj}
}

// Equal reports whether v and other hold the same tree.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n.Equal(other.n)
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, field := range v.obj {
			o, ok := other.obj[k]
			if !ok || !field.Equal(o) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Validate checks that every node in the tree holds a known kind.
func (v Value) Validate() error {
	switch v.kind {
	case KindNull, KindBool, KindNumber, KindString:
		return nil
	case KindArray:
		for i, elem := range v.arr {
			if err := elem.Validate(); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	case KindObject:
		for k, field := range v.obj {
			if err := field.Validate(); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported %s", ErrMalformedValue, v.kind)
	}
}
