package irc2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/icon-sdk-go/crypto"
	"github.com/blockberries/icon-sdk-go/testing/vectors"
	"github.com/blockberries/icon-sdk-go/transaction"
	"github.com/blockberries/icon-sdk-go/types"
)

const (
	testContract = types.Address("cx273548dff8bb77ffaac5a342c4c04aeae0bc48fa")
	testHolder   = types.Address("hx8dc6ae3d93e60a2dddf80bfc5fb1cd16a2bf6160")
)

func newToken(t *testing.T) *Token {
	t.Helper()
	token, err := New(testContract)
	require.NoError(t, err)
	return token
}

func preImage(t *testing.T, tx *transaction.Transaction) string {
	t.Helper()
	out, err := tx.PreImage()
	require.NoError(t, err)
	return string(out)
}

func TestNew_RejectsAccountAddress(t *testing.T) {
	_, err := New(testHolder)
	assert.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestReadOnlyQueries(t *testing.T) {
	token := newToken(t)
	tests := []struct {
		name  string
		build func() (*transaction.Transaction, error)
		want  string
	}{
		{"name", token.Name, "icx_call.data.{method.name}.dataType.call.to." + testContract.String()},
		{"symbol", token.Symbol, "icx_call.data.{method.symbol}.dataType.call.to." + testContract.String()},
		{"decimals", token.Decimals, "icx_call.data.{method.decimals}.dataType.call.to." + testContract.String()},
		{"totalSupply", token.TotalSupply, "icx_call.data.{method.totalSupply}.dataType.call.to." + testContract.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, transaction.MethodCall, tx.Method())
			assert.Equal(t, tt.want, preImage(t, tx))
		})
	}
}

func TestBalanceOf(t *testing.T) {
	tx, err := newToken(t).BalanceOf(testHolder)
	require.NoError(t, err)
	assert.Equal(t,
		"icx_call.data.{method.balanceOf.params.{_owner."+testHolder.String()+"}}.dataType.call.to."+testContract.String(),
		preImage(t, tx))

	_, err = newToken(t).BalanceOf("hxnope")
	assert.ErrorIs(t, err, types.ErrInvalidAddress)
}

func transferFixture() Transfer {
	return Transfer{
		From:      testHolder,
		To:        testHolder,
		Amount:    "12.317",
		Version:   "0x3",
		NID:       "0x2",
		Nonce:     "0x1",
		StepLimit: "0x186a00",
		Timestamp: time.UnixMicro(0x5f1a2b3c4d5e6),
	}
}

func TestTransfer_Vector(t *testing.T) {
	file := vectors.Default()
	vec := file.Encodings[1]

	tx, err := newToken(t).Transfer(transferFixture())
	require.NoError(t, err)
	assert.Equal(t, vec.PreImage, preImage(t, tx))

	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, "0x"+vec.HashHex, hash)
}

func TestTransfer_SignVector(t *testing.T) {
	file := vectors.Default()
	sigVec := file.Signatures[2]
	kv, ok := file.Key(sigVec.Key)
	require.True(t, ok)

	w, err := crypto.WalletFromPrivateKey(kv.PrivateKeyHex)
	require.NoError(t, err)
	require.Equal(t, testHolder, w.Address())

	tx, err := newToken(t).Transfer(transferFixture())
	require.NoError(t, err)
	require.NoError(t, tx.Sign(w))
	require.NoError(t, tx.Verify())

	sig, err := tx.Signature()
	require.NoError(t, err)
	assert.Equal(t, sigVec.Signature, sig.String())
}

func TestTransfer_HexAmountAndData(t *testing.T) {
	tr := transferFixture()
	tr.Amount = "0x10"
	tr.Data = []byte("memo")

	tx, err := newToken(t).Transfer(tr)
	require.NoError(t, err)
	assert.Contains(t, preImage(t, tx), "params.{_data.0x6d656d6f._to."+testHolder.String()+"._value.0x10}")
}

func TestTransfer_Errors(t *testing.T) {
	token := newToken(t)

	tr := transferFixture()
	tr.To = "bad"
	_, err := token.Transfer(tr)
	assert.ErrorIs(t, err, types.ErrInvalidAddress)

	tr = transferFixture()
	tr.Amount = "lots"
	_, err = token.Transfer(tr)
	assert.ErrorIs(t, err, types.ErrInvalidAmount)

	tr = transferFixture()
	tr.Amount = "0xq"
	_, err = token.Transfer(tr)
	assert.ErrorIs(t, err, types.ErrInvalidAmount)

	tr = transferFixture()
	tr.From = ""
	_, err = token.Transfer(tr)
	assert.ErrorIs(t, err, types.ErrInvalidAddress)
}
