package crypto

import (
	"fmt"

	"github.com/blockberries/icon-sdk-go/types"
)

// Wallet binds a private key to its derived public key and address.
// Thread-safe: signing is stateless. Zeroize must not race with signing.
type Wallet struct {
	key     *PrivateKey
	pub     *PublicKey
	address types.Address
}

// NewWallet creates a wallet with a freshly generated key.
func NewWallet() (*Wallet, error) {
	key, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return newWallet(key), nil
}

// WalletFromPrivateKey loads a wallet from a hex private key.
func WalletFromPrivateKey(hexKey string) (*Wallet, error) {
	key, err := PrivateKeyFromHex(hexKey)
	if err != nil {
		return nil, err
	}
	return newWallet(key), nil
}

// WalletFromKey wraps an existing private key.
func WalletFromKey(key *PrivateKey) (*Wallet, error) {
	if key.IsZero() {
		return nil, fmt.Errorf("%w: key has been zeroized", ErrInvalidKey)
	}
	return newWallet(key), nil
}

func newWallet(key *PrivateKey) *Wallet {
	pub := key.PublicKey()
	return &Wallet{key: key, pub: pub, address: DeriveAddress(pub)}
}

// Address returns the hx address.
func (w *Wallet) Address() types.Address { return w.address }

// PublicKey returns the public key.
func (w *Wallet) PublicKey() *PublicKey { return w.pub }

// PublicKeyHex returns X || Y as hex.
func (w *Wallet) PublicKeyHex() string { return w.pub.Hex() }

// PrivateKeyHex returns the private scalar as hex.
// WARNING: never log the result.
func (w *Wallet) PrivateKeyHex() string { return w.key.Hex() }

// SignDigest signs a 32-byte digest.
func (w *Wallet) SignDigest(digest []byte) (Signature, error) {
	return Sign(digest, w.key)
}

// Sign hashes data with SHA3-256 and signs the digest.
func (w *Wallet) Sign(data []byte) (Signature, error) {
	return SignData(data, w.key)
}

// Zeroize clears the private key. The wallet can no longer sign.
func (w *Wallet) Zeroize() {
	w.key.Zeroize()
}
