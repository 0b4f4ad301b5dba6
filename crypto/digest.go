package crypto

import (
	"golang.org/x/crypto/sha3"
)

// DigestSize is the size of a SHA3-256 digest.
const DigestSize = 32

// Sum returns the SHA3-256 digest of data.
func Sum(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

func checkDigest(digest []byte) error {
	if len(digest) != DigestSize {
		return ErrDigestInput
	}
	return nil
}
