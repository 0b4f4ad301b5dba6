package crypto

import "errors"

var (
	// ErrInvalidKey is returned for a malformed or out-of-range private key
	// (wrong length, zero, or not below the curve order) or an unparsable public key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrDigestInput is returned when the value handed to the signer is not a 32-byte digest.
	ErrDigestInput = errors.New("digest must be 32 bytes")

	// ErrInvalidSignature is returned when a signature cannot be decoded or does not
	// recover to a public key.
	ErrInvalidSignature = errors.New("invalid signature")
)
