// Package vectors provides cross-implementation test vectors for ICON request signing.
//
// Each vector holds deterministic inputs and the outputs any conforming
// implementation must produce: the canonical pre-image, its SHA3-256 hash, and
// the address derived from a private key, and the deterministic signature of a
// digest.
//
// SECURITY: Test vectors use well-known test keys. NEVER use these keys in production.
package vectors

import (
	"encoding/hex"
	"encoding/json"
)

// TestVectorFile is the root structure of the test vector JSON file.
type TestVectorFile struct {
	// Version of the test vector format.
	Version string `json:"version"`

	// Description of this test vector file.
	Description string `json:"description"`

	// Keys are key derivation vectors.
	Keys []KeyVector `json:"keys"`

	// Encodings are canonical encoding vectors.
	Encodings []EncodingVector `json:"encodings"`

	// Amounts are ICX/hex conversion vectors.
	Amounts []AmountVector `json:"amounts"`

	// Signatures are deterministic (RFC 6979) signing vectors.
	Signatures []SignatureVector `json:"signatures"`
}

// KeyVector maps a private key to its public key and address.
type KeyVector struct {
	Name string `json:"name"`

	// PrivateKeyHex is the 32-byte scalar in hex.
	// SECURITY: These are TEST KEYS ONLY. Never use in production.
	PrivateKeyHex string `json:"private_key_hex"`

	// PublicKeyHex is the 64-byte uncompressed public key without its 0x04 prefix.
	PublicKeyHex string `json:"public_key_hex"`

	// Address is "hx" + the last 40 hex characters of SHA3-256(public key).
	Address string `json:"address"`
}

// EncodingVector is a request method and params with the expected pre-image.
type EncodingVector struct {
	Name string `json:"name"`

	Method string `json:"method"`

	// Params is the params object as JSON.
	Params json.RawMessage `json:"params"`

	// PreImage is the expected canonical serialization.
	PreImage string `json:"pre_image"`

	// HashHex is the expected SHA3-256 of PreImage in hex, when published.
	HashHex string `json:"hash_hex,omitempty"`
}

// AmountVector pairs a decimal ICX amount with its hex loop quantity.
type AmountVector struct {
	ICX string `json:"icx"`
	Hex string `json:"hex"`
}

// SignatureVector is the expected signature of a digest under a key vector.
type SignatureVector struct {
	Name string `json:"name"`

	// Key names the KeyVector whose private key signs.
	Key string `json:"key"`

	Digest HexBytes `json:"digest"`

	// Signature is base64(r || s || recovery id).
	Signature string `json:"signature"`
}

// HexBytes is a helper type for hex-encoded bytes in JSON.
type HexBytes []byte

// MarshalJSON encodes bytes as hex string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// UnmarshalJSON decodes hex string to bytes.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}
