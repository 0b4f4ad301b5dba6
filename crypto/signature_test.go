package crypto

import (
	"encoding/base64"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/icon-sdk-go/testing/vectors"
)

func mustKey(t *testing.T) *PrivateKey {
	t.Helper()
	key, err := GeneratePrivateKey()
	require.NoError(t, err)
	return key
}

// ============================================================================
// Digest Tests
// ============================================================================

func TestSum_Vectors(t *testing.T) {
	for _, vec := range vectors.Default().Encodings {
		if vec.HashHex == "" {
			continue
		}
		t.Run(vec.Name, func(t *testing.T) {
			digest := Sum([]byte(vec.PreImage))
			assert.Len(t, digest, DigestSize)
			assert.Equal(t, vec.HashHex, hexString(digest))
		})
	}
}

func TestSum_Empty(t *testing.T) {
	// SHA3-256 of the empty string, not Keccak-256.
	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", hexString(Sum(nil)))
}

// ============================================================================
// Sign / Verify Tests
// ============================================================================

func TestSign_Vectors(t *testing.T) {
	file := vectors.Default()
	for _, vec := range file.Signatures {
		t.Run(vec.Name, func(t *testing.T) {
			kv, ok := file.Key(vec.Key)
			require.True(t, ok)
			key, err := PrivateKeyFromHex(kv.PrivateKeyHex)
			require.NoError(t, err)

			sig, err := Sign(vec.Digest, key)
			require.NoError(t, err)
			assert.Equal(t, vec.Signature, sig.String())

			addr, err := RecoverAddress(vec.Digest, sig)
			require.NoError(t, err)
			assert.Equal(t, kv.Address, addr.String())
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("icx_sendTransaction.nid.0x1"))

	first, err := Sign(digest, key)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Sign(digest, key)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSign_Format(t *testing.T) {
	key := mustKey(t)
	for i := 0; i < 32; i++ {
		sig, err := Sign(Sum([]byte{byte(i)}), key)
		require.NoError(t, err)

		assert.LessOrEqual(t, sig.RecoveryID(), byte(1))
		assert.True(t, sig.IsLowS())

		raw, err := base64.StdEncoding.DecodeString(sig.String())
		require.NoError(t, err)
		assert.Len(t, raw, SignatureSize)
	}
}

func TestSign_DigestInput(t *testing.T) {
	key := mustKey(t)
	for _, n := range []int{0, 1, 31, 33, 64} {
		_, err := Sign(make([]byte, n), key)
		assert.ErrorIs(t, err, ErrDigestInput, "length %d", n)
	}
}

func TestSignVerify(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("payload"))

	sig, err := Sign(digest, key)
	require.NoError(t, err)
	assert.True(t, Verify(digest, sig, key.PublicKey()))
}

func TestSignVerify_WrongDigest(t *testing.T) {
	key := mustKey(t)
	sig, err := Sign(Sum([]byte("a")), key)
	require.NoError(t, err)

	assert.False(t, Verify(Sum([]byte("b")), sig, key.PublicKey()))
}

func TestSignVerify_WrongKey(t *testing.T) {
	key := mustKey(t)
	other := mustKey(t)
	digest := Sum([]byte("payload"))

	sig, err := Sign(digest, key)
	require.NoError(t, err)
	assert.False(t, Verify(digest, sig, other.PublicKey()))
}

func TestVerify_Malformed(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("payload"))
	sig, err := Sign(digest, key)
	require.NoError(t, err)

	assert.False(t, Verify(digest[:31], sig, key.PublicKey()))
	assert.False(t, Verify(digest, sig, nil))
	assert.False(t, Verify(digest, Signature{}, key.PublicKey()))

	tampered := sig
	tampered[10] ^= 0x01
	assert.False(t, Verify(digest, tampered, key.PublicKey()))
}

func TestVerify_AcceptsHighS(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("payload"))
	sig, err := Sign(digest, key)
	require.NoError(t, err)

	high := flipS(t, sig)
	assert.False(t, high.IsLowS())
	assert.True(t, Verify(digest, high, key.PublicKey()))
}

// ============================================================================
// Recovery Tests
// ============================================================================

func TestRecoverPublicKey(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("recover me"))

	sig, err := Sign(digest, key)
	require.NoError(t, err)

	pub, err := RecoverPublicKey(digest, sig)
	require.NoError(t, err)
	assert.True(t, pub.Equals(key.PublicKey()))
}

func TestRecoverPublicKey_WrongDigest(t *testing.T) {
	key := mustKey(t)
	sig, err := Sign(Sum([]byte("a")), key)
	require.NoError(t, err)

	pub, err := RecoverPublicKey(Sum([]byte("b")), sig)
	if err == nil {
		assert.False(t, pub.Equals(key.PublicKey()))
	}
}

func TestRecoverPublicKey_Errors(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("x"))
	sig, err := Sign(digest, key)
	require.NoError(t, err)

	_, err = RecoverPublicKey(digest[:16], sig)
	assert.ErrorIs(t, err, ErrDigestInput)

	bad := sig
	bad[64] = 4
	_, err = RecoverPublicKey(digest, bad)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = RecoverPublicKey(digest, Signature{})
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

// ============================================================================
// Encoding Tests
// ============================================================================

func TestParseSignature(t *testing.T) {
	vec := vectors.Default().Signatures[0]
	sig, err := ParseSignature(vec.Signature)
	require.NoError(t, err)
	assert.Equal(t, vec.Signature, sig.String())
	assert.Len(t, sig.Hex(), 130)
}

func TestParseSignature_Invalid(t *testing.T) {
	tooShort := base64.StdEncoding.EncodeToString(make([]byte, 64))
	badRecovery := make([]byte, SignatureSize)
	badRecovery[64] = 2

	for name, in := range map[string]string{
		"not base64":   "%%%",
		"too short":    tooShort,
		"bad recovery": base64.StdEncoding.EncodeToString(badRecovery),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSignature(in)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestSignature_JSON(t *testing.T) {
	key := mustKey(t)
	sig, err := Sign(Sum([]byte("json")), key)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]Signature{"signature": sig})
	require.NoError(t, err)
	assert.JSONEq(t, `{"signature":"`+sig.String()+`"}`, string(data))

	var out map[string]Signature
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, sig, out["signature"])
}

// ============================================================================
// Concurrency Tests
// ============================================================================

func TestSign_Concurrent(t *testing.T) {
	key := mustKey(t)
	digest := Sum([]byte("concurrent"))
	want, err := Sign(digest, key)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]Signature, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Sign(digest, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}
