// Package testing provides test utilities for the ICON SDK.
package testing

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/blockberries/icon-sdk-go/types"
	"github.com/stretchr/testify/require"
)

// PreImager is anything that can produce a signing pre-image.
type PreImager interface {
	PreImage() ([]byte, error)
}

// AssertPreImageDeterminism calls PreImage() iterations times and asserts all
// outputs are byte-identical.
//
// Usage:
//
//	func TestTransfer_PreImageDeterminism(t *testing.T) {
//	    tx, _ := builder.Build()
//	    icontesting.AssertPreImageDeterminism(t, tx, 100)
//	}
func AssertPreImageDeterminism(t *testing.T, p PreImager, iterations int) {
	t.Helper()

	if iterations < 2 {
		t.Fatal("AssertPreImageDeterminism requires at least 2 iterations")
	}

	first, err := p.PreImage()
	require.NoError(t, err, "PreImage() failed on first call")
	require.NotEmpty(t, first, "PreImage() returned no bytes on first call")

	for i := 1; i < iterations; i++ {
		result, err := p.PreImage()
		require.NoError(t, err, "PreImage() failed on iteration %d", i)
		if !bytes.Equal(first, result) {
			t.Fatalf("PreImage() returned different bytes on iteration %d.\n"+
				"First:  %s\n"+
				"Got:    %s", i, first, result)
		}
	}
}

// Reinsert returns a deep copy of v in which every object was rebuilt by
// inserting its keys in a random order drawn from rng.
func Reinsert(v types.Value, rng *rand.Rand) types.Value {
	switch v.Kind() {
	case types.KindArray:
		elems := v.Elems()
		out := make([]types.Value, len(elems))
		for i, elem := range elems {
			out[i] = Reinsert(elem, rng)
		}
		return types.Array(out...)
	case types.KindObject:
		keys := v.Keys()
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		out := types.Object()
		for _, k := range keys {
			field, _ := v.Get(k)
			// Set cannot fail on an object built by types.Object.
			_ = out.Set(k, Reinsert(field, rng))
		}
		return out
	default:
		return v
	}
}
