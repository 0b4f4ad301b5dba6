// Package canonical produces the signing pre-image of ICON JSON-RPC requests.
//
// The pre-image is the request method followed by a deterministic serialization
// of its params object:
//
//	icx_sendTransaction.from.hx....nid.0x1.nonce.0x1.stepLimit.0x186a0...
//
// Objects are written as key.value pairs in byte-wise key order, arrays in index
// order, both with '.' separators. The characters \ . { } [ ] inside strings are
// escaped with a backslash and null is written as \0.
package canonical

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blockberries/icon-sdk-go/types"
)

// SignatureKey is the params field that carries the transaction signature.
// It is never part of the pre-image.
const SignatureKey = "signature"

// nullToken is the encoding of a null value: a backslash followed by '0'.
const nullToken = `\0`

// Encode serializes v into its canonical form.
//
// INVARIANT: Encode returns identical bytes for equal trees regardless of the
// order in which object keys were inserted.
func Encode(v types.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeParams builds the pre-image "<method>.<params>" where <params> is the
// canonical encoding of params without its outer braces.
// A null params resolves to the empty object, so a request without params
// encodes as "<method>.".
func EncodeParams(method string, params types.Value) ([]byte, error) {
	if method == "" {
		return nil, fmt.Errorf("%w: method is required", types.ErrMalformedValue)
	}

	switch params.Kind() {
	case types.KindNull:
		params = types.Object()
	case types.KindObject:
	default:
		return nil, fmt.Errorf("%w: params must be an object, got %s", types.ErrMalformedValue, params.Kind())
	}

	body, err := Encode(params.Without(SignatureKey))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(method) + len(body))
	buf.WriteString(method)
	buf.WriteByte('.')
	buf.Write(body[1 : len(body)-1])
	return buf.Bytes(), nil
}

// EncodeRequest builds the pre-image of a JSON-RPC request envelope
// ({"jsonrpc", "id", "method", "params"}). Only method and params take part.
func EncodeRequest(envelope types.Value) ([]byte, error) {
	if envelope.Kind() != types.KindObject {
		return nil, fmt.Errorf("%w: request must be an object, got %s", types.ErrMalformedValue, envelope.Kind())
	}

	methodValue, ok := envelope.Get("method")
	if !ok {
		return nil, fmt.Errorf("%w: request has no method", types.ErrMalformedValue)
	}
	method, ok := methodValue.AsString()
	if !ok {
		return nil, fmt.Errorf("%w: method must be a string, got %s", types.ErrMalformedValue, methodValue.Kind())
	}

	params, _ := envelope.Get("params")
	return EncodeParams(method, params)
}

func encodeValue(buf *bytes.Buffer, v types.Value) error {
	switch v.Kind() {
	case types.KindNull:
		buf.WriteString(nullToken)

	case types.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case types.KindNumber:
		n, _ := v.AsNumber()
		buf.WriteString(n.String())

	case types.KindString:
		s, _ := v.AsString()
		buf.WriteString(EscapeString(s))

	case types.KindArray:
		buf.WriteByte('[')
		for i, elem := range v.Elems() {
			if i > 0 {
				buf.WriteByte('.')
			}
			if err := encodeValue(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')

	case types.KindObject:
		buf.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				buf.WriteByte('.')
			}
			field, _ := v.Get(key)
			buf.WriteString(key)
			buf.WriteByte('.')
			if err := encodeValue(buf, field); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		buf.WriteByte('}')

	default:
		return fmt.Errorf("%w: cannot encode %s", types.ErrMalformedValue, v.Kind())
	}
	return nil
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
)

// EscapeString escapes the delimiter characters \ . { } [ ] with a backslash.
func EscapeString(s string) string {
	return stringEscaper.Replace(s)
}
