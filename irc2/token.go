// Package irc2 builds requests for IRC-2 fungible token contracts.
package irc2

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/blockberries/icon-sdk-go/transaction"
	"github.com/blockberries/icon-sdk-go/types"
)

// Read-only and write methods of an IRC-2 contract.
const (
	MethodName        = "name"
	MethodSymbol      = "symbol"
	MethodDecimals    = "decimals"
	MethodTotalSupply = "totalSupply"
	MethodBalanceOf   = "balanceOf"
	MethodTransfer    = "transfer"
)

// Token targets a single IRC-2 contract.
type Token struct {
	contract types.Address
}

// New returns a Token for a cx contract address.
func New(contract types.Address) (*Token, error) {
	if !contract.IsContract() {
		return nil, fmt.Errorf("%w: token contract %q", types.ErrInvalidAddress, contract)
	}
	return &Token{contract: contract}, nil
}

// Contract returns the token contract address.
func (t *Token) Contract() types.Address { return t.contract }

// Name builds the icx_call for name().
func (t *Token) Name() (*transaction.Transaction, error) {
	return t.query(MethodName, types.Null())
}

// Symbol builds the icx_call for symbol().
func (t *Token) Symbol() (*transaction.Transaction, error) {
	return t.query(MethodSymbol, types.Null())
}

// Decimals builds the icx_call for decimals().
func (t *Token) Decimals() (*transaction.Transaction, error) {
	return t.query(MethodDecimals, types.Null())
}

// TotalSupply builds the icx_call for totalSupply().
func (t *Token) TotalSupply() (*transaction.Transaction, error) {
	return t.query(MethodTotalSupply, types.Null())
}

// BalanceOf builds the icx_call for balanceOf(_owner).
func (t *Token) BalanceOf(owner types.Address) (*transaction.Transaction, error) {
	if !owner.IsValid() {
		return nil, fmt.Errorf("%w: owner %q", types.ErrInvalidAddress, owner)
	}
	return t.query(MethodBalanceOf, types.StringMap(map[string]string{"_owner": owner.String()}))
}

func (t *Token) query(method string, params types.Value) (*transaction.Transaction, error) {
	return transaction.Builder{
		Method: transaction.MethodCall,
		To:     t.contract,
		Call:   &transaction.Call{Method: method, Params: params},
	}.Build()
}

// Transfer describes a transfer(_to, _value, _data) transaction.
type Transfer struct {
	From types.Address
	To   types.Address

	// Amount is a decimal amount at 18 decimals or a 0x-prefixed raw quantity.
	Amount string

	// Data is passed to a receiving contract's tokenFallback; empty omits it.
	Data []byte

	Version   string
	NID       string
	Nonce     string
	StepLimit string
	Timestamp time.Time
}

// Transfer builds the unsigned icx_sendTransaction for transfer.
func (t *Token) Transfer(tr Transfer) (*transaction.Transaction, error) {
	if !tr.To.IsValid() {
		return nil, fmt.Errorf("%w: recipient %q", types.ErrInvalidAddress, tr.To)
	}
	value, err := tokenAmount(tr.Amount)
	if err != nil {
		return nil, err
	}

	params := map[string]string{"_to": tr.To.String(), "_value": value}
	if len(tr.Data) > 0 {
		params["_data"] = hexutil.Encode(tr.Data)
	}

	return transaction.Builder{
		Method:    transaction.MethodSendTransaction,
		From:      tr.From,
		To:        t.contract,
		Version:   tr.Version,
		NID:       tr.NID,
		Nonce:     tr.Nonce,
		StepLimit: tr.StepLimit,
		Timestamp: tr.Timestamp,
		Call:      &transaction.Call{Method: MethodTransfer, Params: types.StringMap(params)},
	}.Build()
}

func tokenAmount(amount string) (string, error) {
	if strings.HasPrefix(amount, "0x") {
		if _, err := types.ParseQuantity(amount); err != nil {
			return "", err
		}
		return amount, nil
	}
	return types.ICXToHex(amount)
}
