package transaction

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"github.com/blockberries/icon-sdk-go/canonical"
	"github.com/blockberries/icon-sdk-go/crypto"
	"github.com/blockberries/icon-sdk-go/types"
)

// Transaction is a JSON-RPC request: {jsonrpc, id, method, params}.
//
// INVARIANT: params is always an object.
// INVARIANT: the pre-image never includes the "signature" param, so signing
// does not change PreImage or Hash.
//
// Sign mutates the params; a Transaction must not be signed concurrently
// with other use.
type Transaction struct {
	id     int64
	method string
	params types.Value
}

// ID returns the JSON-RPC request id.
func (tx *Transaction) ID() int64 { return tx.id }

// Method returns the JSON-RPC method.
func (tx *Transaction) Method() string { return tx.method }

// Params returns a deep copy of the params object.
func (tx *Transaction) Params() types.Value { return tx.params.Clone() }

// From returns the "from" param, or "" when absent.
func (tx *Transaction) From() types.Address {
	v, ok := tx.params.Get(ParamFrom)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return types.Address(s)
}

// PreImage returns the canonical serialization that is hashed and signed.
func (tx *Transaction) PreImage() ([]byte, error) {
	return canonical.EncodeParams(tx.method, tx.params)
}

// Digest returns the SHA3-256 digest of the pre-image.
func (tx *Transaction) Digest() ([]byte, error) {
	preImage, err := tx.PreImage()
	if err != nil {
		return nil, err
	}
	return crypto.Sum(preImage), nil
}

// Hash returns the transaction hash as "0x" + hex digest.
func (tx *Transaction) Hash() (string, error) {
	digest, err := tx.Digest()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(digest), nil
}

// Sign signs the digest with s and stores the base64 signature param.
// A transaction carrying a "from" param can only be signed by that account.
// Signing again replaces the previous signature.
func (tx *Transaction) Sign(s crypto.Signer) error {
	if from := tx.From(); from != "" && from != s.Address() {
		return fmt.Errorf("%w: from %s, signer %s", ErrSignerMismatch, from, s.Address())
	}
	digest, err := tx.Digest()
	if err != nil {
		return err
	}
	sig, err := s.SignDigest(digest)
	if err != nil {
		return err
	}
	return tx.params.Set(ParamSignature, types.String(sig.String()))
}

// Signature returns the decoded signature param.
func (tx *Transaction) Signature() (crypto.Signature, error) {
	v, ok := tx.params.Get(ParamSignature)
	if !ok {
		return crypto.Signature{}, ErrNotSigned
	}
	s, ok := v.AsString()
	if !ok {
		return crypto.Signature{}, fmt.Errorf("%w: signature is %s", crypto.ErrInvalidSignature, v.Kind())
	}
	return crypto.ParseSignature(s)
}

// IsSigned reports whether a signature param is present.
func (tx *Transaction) IsSigned() bool {
	_, ok := tx.params.Get(ParamSignature)
	return ok
}

// Signer recovers the address that produced the signature.
func (tx *Transaction) Signer() (types.Address, error) {
	sig, err := tx.Signature()
	if err != nil {
		return "", err
	}
	digest, err := tx.Digest()
	if err != nil {
		return "", err
	}
	return crypto.RecoverAddress(digest, sig)
}

// Verify checks that the signature recovers to the "from" address.
func (tx *Transaction) Verify() error {
	from := tx.From()
	if from == "" {
		return fmt.Errorf("%w: transaction has no from address", types.ErrInvalidAddress)
	}
	signer, err := tx.Signer()
	if err != nil {
		return err
	}
	if signer != from {
		return fmt.Errorf("%w: from %s, recovered %s", ErrSignerMismatch, from, signer)
	}
	return nil
}

// Envelope returns the full JSON-RPC request tree.
func (tx *Transaction) Envelope() types.Value {
	return types.ObjectOf(map[string]types.Value{
		"jsonrpc": types.String(JSONRPCVersion),
		"id":      types.Int(tx.id),
		"method":  types.String(tx.method),
		"params":  tx.params.Clone(),
	})
}

// MarshalJSON renders the request body.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return tx.Envelope().MarshalJSON()
}

// Parse decodes a JSON-RPC request body.
func Parse(data []byte) (*Transaction, error) {
	envelope, err := types.ParseValue(data)
	if err != nil {
		return nil, err
	}
	return FromEnvelope(envelope)
}

// FromEnvelope reads a request tree. A missing params key yields empty params;
// a missing id yields DefaultID.
func FromEnvelope(envelope types.Value) (*Transaction, error) {
	if envelope.Kind() != types.KindObject {
		return nil, fmt.Errorf("%w: request must be an object, got %s", types.ErrMalformedValue, envelope.Kind())
	}

	if v, ok := envelope.Get("jsonrpc"); ok {
		if s, _ := v.AsString(); s != JSONRPCVersion {
			return nil, fmt.Errorf("%w: unsupported jsonrpc version", types.ErrMalformedValue)
		}
	}

	m, _ := envelope.Get("method")
	method, ok := m.AsString()
	if !ok || method == "" {
		return nil, fmt.Errorf("%w: method must be a non-empty string", types.ErrMalformedValue)
	}

	id := DefaultID
	if v, ok := envelope.Get("id"); ok {
		n, isNum := v.AsNumber()
		if !isNum || !n.Equal(n.Truncate(0)) || !n.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: id must be a positive integer", types.ErrMalformedValue)
		}
		id = n.IntPart()
	}

	params := types.Object()
	if v, ok := envelope.Get("params"); ok && !v.IsNull() {
		if v.Kind() != types.KindObject {
			return nil, fmt.Errorf("%w: params must be an object, got %s", types.ErrMalformedValue, v.Kind())
		}
		params = v.Clone()
	}
	return &Transaction{id: id, method: method, params: params}, nil
}
