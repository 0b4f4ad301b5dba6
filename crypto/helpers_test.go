package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}

// flipS returns (r, N-s) with the recovery id flipped, the high-S twin of sig.
func flipS(t *testing.T, sig Signature) Signature {
	t.Helper()
	var s secp256k1.ModNScalar
	require.False(t, s.SetByteSlice(sig.S()))
	s.Negate()

	out := sig
	sBytes := s.Bytes()
	copy(out[32:64], sBytes[:])
	out[64] ^= 1
	return out
}
