// Package crypto provides the secp256k1 keys, SHA3-256 digests, recoverable
// signatures and address derivation used to authorize ICON transactions.
package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/blockberries/icon-sdk-go/types"
)

const (
	// PrivateKeySize is the size of a serialized private scalar.
	PrivateKeySize = 32

	// PublicKeySize is the size of an uncompressed public key including its 0x04 prefix.
	PublicKeySize = 65

	// CompressedPublicKeySize is the size of a compressed public key.
	CompressedPublicKeySize = 33

	// uncompressedPrefix is the format byte of an uncompressed SEC1 point.
	uncompressedPrefix = 0x04
)

// Zeroize securely overwrites a byte slice with zeros.
// Used to clear sensitive data (private keys) from memory.
//
// subtle.XORBytes cannot be optimized away as a dead store, and
// runtime.KeepAlive keeps b live until the write has happened.
func Zeroize(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.XORBytes(b, b, b)
	runtime.KeepAlive(b)
}

// PrivateKey is a secp256k1 private scalar.
// It is safe for concurrent signing; Zeroize must not race with Sign.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GeneratePrivateKey generates a new private key from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secp256k1 key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a private key from a 32-byte big-endian scalar.
// The scalar must be in [1, N-1]; values that would be silently reduced modulo
// the curve order are rejected.
// The caller should zero the input data after this call returns if it's sensitive.
func PrivateKeyFromBytes(data []byte) (*PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, PrivateKeySize, len(data))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(data); overflow {
		scalar.Zero()
		return nil, fmt.Errorf("%w: scalar is not below the curve order", ErrInvalidKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PrivateKeyFromHex parses a hex private key, with or without a "0x" prefix.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	defer Zeroize(data)
	return PrivateKeyFromBytes(data)
}

// Bytes returns the 32-byte scalar.
// WARNING: Handle with care. Consider zeroing after use.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// Hex returns the scalar as lowercase hex.
// WARNING: never log the result.
func (k *PrivateKey) Hex() string {
	b := k.Bytes()
	defer Zeroize(b)
	return hex.EncodeToString(b)
}

// PublicKey returns the corresponding public key.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: k.key.PubKey()}
}

// IsZero reports whether the key has been zeroized.
func (k *PrivateKey) IsZero() bool {
	return k == nil || k.key == nil || k.key.Key.IsZero()
}

// Zeroize overwrites the private key with zeros.
// After calling Zeroize, the key is no longer usable.
func (k *PrivateKey) Zeroize() {
	if k != nil && k.key != nil {
		k.key.Zero()
	}
}

// PublicKey is a point on secp256k1.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// PublicKeyFromBytes parses a public key in uncompressed (65 bytes), prefixless
// uncompressed (64 bytes) or compressed (33 bytes) form.
func PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	if len(data) == PublicKeySize-1 {
		prefixed := make([]byte, 0, PublicKeySize)
		prefixed = append(prefixed, uncompressedPrefix)
		data = append(prefixed, data...)
	}
	if len(data) != PublicKeySize && len(data) != CompressedPublicKeySize {
		return nil, fmt.Errorf("%w: unexpected public key size %d", ErrInvalidKey, len(data))
	}
	key, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &PublicKey{key: key}, nil
}

// PublicKeyFromHex parses a hex public key in any form accepted by PublicKeyFromBytes.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return PublicKeyFromBytes(data)
}

// Bytes returns the 65-byte uncompressed encoding (0x04 || X || Y).
func (p *PublicKey) Bytes() []byte {
	return p.key.SerializeUncompressed()
}

// CompressedBytes returns the 33-byte compressed encoding.
func (p *PublicKey) CompressedBytes() []byte {
	return p.key.SerializeCompressed()
}

// Hex returns X || Y as hex, without the format prefix.
func (p *PublicKey) Hex() string {
	return hex.EncodeToString(p.Bytes()[1:])
}

// Address derives the account address of the key.
func (p *PublicKey) Address() types.Address {
	return DeriveAddress(p)
}

// Equals checks equality using constant-time comparison.
func (p *PublicKey) Equals(other *PublicKey) bool {
	if p == nil || other == nil {
		return false
	}
	return subtle.ConstantTimeCompare(p.Bytes(), other.Bytes()) == 1
}

// String returns the hex form of the key.
func (p *PublicKey) String() string {
	return p.Hex()
}
