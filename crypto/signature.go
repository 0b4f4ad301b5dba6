package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/blockberries/icon-sdk-go/types"
)

// SignatureSize is the size of a recoverable signature: r (32) || s (32) || recovery id (1).
const SignatureSize = 65

// compactMagicOffset is added to the recovery id in the compact form used by
// the secp256k1 library (27 for uncompressed keys).
const compactMagicOffset = 27

// Signature is a recoverable ECDSA signature laid out as r || s || v,
// where v is the recovery id in {0, 1}.
type Signature [SignatureSize]byte

// ParseSignature decodes the base64 transport form of a signature.
func ParseSignature(s string) (Signature, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return SignatureFromBytes(raw)
}

// SignatureFromBytes copies a raw 65-byte signature.
func SignatureFromBytes(raw []byte) (Signature, error) {
	var sig Signature
	if len(raw) != SignatureSize {
		return sig, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, SignatureSize, len(raw))
	}
	copy(sig[:], raw)
	if sig.RecoveryID() > 1 {
		return Signature{}, fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, sig.RecoveryID())
	}
	return sig, nil
}

// Bytes returns a copy of the raw 65 bytes.
func (s Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out, s[:])
	return out
}

// R returns the r component.
func (s Signature) R() []byte { return s[0:32] }

// S returns the s component.
func (s Signature) S() []byte { return s[32:64] }

// RecoveryID returns the trailing recovery byte.
func (s Signature) RecoveryID() byte { return s[64] }

// String returns the base64 transport form.
func (s Signature) String() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

// Hex returns the raw signature as hex.
func (s Signature) Hex() string {
	return hex.EncodeToString(s[:])
}

// IsLowS reports whether s is in the lower half of the curve order.
// Signatures produced by Sign are always low-S; Verify accepts both forms.
func (s Signature) IsLowS() bool {
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(s.S()); overflow {
		return false
	}
	return !scalar.IsOverHalfOrder()
}

// MarshalText implements encoding.TextMarshaler using the base64 form.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	sig, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

// Sign produces a deterministic (RFC 6979) recoverable signature over a
// 32-byte digest. Any other input length fails with ErrDigestInput.
func Sign(digest []byte, key *PrivateKey) (Signature, error) {
	var out Signature
	if err := checkDigest(digest); err != nil {
		return out, err
	}
	if key.IsZero() {
		return out, fmt.Errorf("%w: key has been zeroized", ErrInvalidKey)
	}

	// compact is [27 + recid] || r || s
	compact := ecdsa.SignCompact(key.key, digest, false)
	copy(out[0:64], compact[1:65])
	out[64] = compact[0] - compactMagicOffset
	return out, nil
}

// SignData hashes data with SHA3-256 and signs the digest.
func SignData(data []byte, key *PrivateKey) (Signature, error) {
	return Sign(Sum(data), key)
}

// RecoverPublicKey returns the public key that produced sig over digest.
func RecoverPublicKey(digest []byte, sig Signature) (*PublicKey, error) {
	if err := checkDigest(digest); err != nil {
		return nil, err
	}
	if sig.RecoveryID() > 1 {
		return nil, fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, sig.RecoveryID())
	}

	compact := make([]byte, SignatureSize)
	compact[0] = sig.RecoveryID() + compactMagicOffset
	copy(compact[1:], sig[0:64])

	pub, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return &PublicKey{key: pub}, nil
}

// RecoverAddress returns the account address that produced sig over digest.
func RecoverAddress(digest []byte, sig Signature) (types.Address, error) {
	pub, err := RecoverPublicKey(digest, sig)
	if err != nil {
		return "", err
	}
	return DeriveAddress(pub), nil
}

// Verify checks sig over digest against pub. It returns false for any
// malformed input rather than an error.
func Verify(digest []byte, sig Signature, pub *PublicKey) bool {
	if pub == nil || checkDigest(digest) != nil {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig.R()); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig.S()); overflow || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, pub.key)
}
