package crypto

import "github.com/blockberries/icon-sdk-go/types"

// Signer is the interface for signing operations.
// Implementations must never expose private key material.
type Signer interface {
	// Address returns the account address of the signing key.
	Address() types.Address

	// PublicKey returns the public key.
	PublicKey() *PublicKey

	// SignDigest signs a 32-byte digest.
	SignDigest(digest []byte) (Signature, error)
}

var _ Signer = (*Wallet)(nil)
