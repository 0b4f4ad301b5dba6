package types

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICXToHex(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"7533727.039631672546337039", "0x63b5429420c741b16a10f"},
		{"12.317", "0xaaeec63de27c8000"},
		{"1", "0xde0b6b3a7640000"},
		{"0", "0x0"},
		{"0.000000000000000001", "0x1"},
		{"0.0000000000000000019", "0x1"}, // truncated past 18 places
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := ICXToHex(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestICXToHex_Errors(t *testing.T) {
	for _, amount := range []string{"", "abc", "1.2.3", "-1", "0x10"} {
		t.Run(amount, func(t *testing.T) {
			_, err := ICXToHex(amount)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
			assert.ErrorIs(t, err, ErrMalformedValue)
		})
	}
}

func TestHexToICX(t *testing.T) {
	got, err := HexToICX("0x63b5429420c741b16a10f")
	require.NoError(t, err)
	assert.Equal(t, "7533727.039631672546337039", got.String())

	got, err = HexToICX("de0b6b3a7640000")
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	got, err = HexToICX("0x0000de0b6b3a7640000")
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}

func TestHexToICX_Errors(t *testing.T) {
	for _, q := range []string{"", "0x", "0xzz", "not hex"} {
		_, err := HexToICX(q)
		assert.ErrorIs(t, err, ErrInvalidAmount, q)
	}
}

func TestICXHexRoundtrip(t *testing.T) {
	for _, amount := range []string{"7533727.039631672546337039", "12.317", "0.5", "1000000"} {
		hex, err := ICXToHex(amount)
		require.NoError(t, err)

		back, err := HexToICX(hex)
		require.NoError(t, err)

		want := decimal.RequireFromString(amount)
		assert.True(t, want.Equal(back), "%s -> %s -> %s", amount, hex, back)
		assert.Equal(t, want.StringFixed(ICXDecimals), back.StringFixed(ICXDecimals))
	}
}

func TestEncodeQuantity(t *testing.T) {
	q, err := EncodeQuantity(big.NewInt(0x186a00))
	require.NoError(t, err)
	assert.Equal(t, "0x186a00", q)

	_, err = EncodeQuantity(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = EncodeQuantity(nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, "0x3", Quantity(3))
}

func TestParseQuantity(t *testing.T) {
	v, err := ParseQuantity("0x186A00")
	require.NoError(t, err)
	assert.Equal(t, int64(0x186a00), v.Int64())

	v, err = ParseQuantity("0x000")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())
}
