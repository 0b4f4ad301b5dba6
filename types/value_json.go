package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/shopspring/decimal"
)

// MarshalJSON implements json.Marshaler.
// Object keys are written in sorted order so equal trees produce identical bytes.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.n.String())
	case KindString:
		buf.WriteString(cramberry.EscapeJSONString(v.s))
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := elem.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(cramberry.EscapeJSONString(k))
			buf.WriteByte(':')
			if err := v.obj[k].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot marshal %s", ErrMalformedValue, v.kind)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
// JSON numbers are kept at full precision; they are never routed through float64.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseValue decodes a JSON document into a Value.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	if dec.More() {
		return Value{}, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedValue)
	}
	return FromInterface(raw)
}

// FromInterface converts the output of a json.Decoder (with UseNumber) into a Value.
// Go integers, strings, bools, nil, []interface{} and map[string]interface{} are also accepted.
func FromInterface(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q: %v", ErrMalformedValue, x, err)
		}
		return Number(d), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint64:
		return Number(decimal.NewFromUint64(x)), nil
	case []interface{}:
		arr := make([]Value, len(x))
		for i, elem := range x {
			converted, err := FromInterface(elem)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = converted
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]interface{}:
		obj := make(map[string]Value, len(x))
		for k, field := range x {
			converted, err := FromInterface(field)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			obj[k] = converted
		}
		return Value{kind: KindObject, obj: obj}, nil
	case map[string]string:
		return StringMap(x), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported Go type %T", ErrMalformedValue, raw)
	}
}
