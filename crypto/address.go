package crypto

import (
	"encoding/hex"

	"github.com/blockberries/icon-sdk-go/types"
)

// DeriveAddress returns "hx" followed by the last 20 bytes of the SHA3-256
// digest of the uncompressed public key without its 0x04 prefix.
func DeriveAddress(pub *PublicKey) types.Address {
	digest := Sum(pub.Bytes()[1:])
	return types.Address(types.AccountPrefix + hex.EncodeToString(digest[len(digest)-20:]))
}
