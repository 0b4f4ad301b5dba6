package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// ICXDecimals is the number of decimal places of one ICX (1 ICX = 10^18 loop).
const ICXDecimals = 18

// ICXToHex converts a decimal ICX amount (e.g. "12.317") into a "0x"-prefixed
// hex loop quantity. Digits beyond 18 decimal places are truncated.
func ICXToHex(amount string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a decimal amount: %v", ErrInvalidAmount, amount, err)
	}
	return ICXDecimalToHex(d)
}

// ICXDecimalToHex converts an ICX amount into a hex loop quantity.
func ICXDecimalToHex(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: negative amount %s", ErrInvalidAmount, amount)
	}
	loop := amount.Shift(ICXDecimals).Truncate(0).BigInt()
	return EncodeQuantity(loop)
}

// HexToICX converts a hex loop quantity (with or without "0x") into ICX at 18-decimal precision.
func HexToICX(quantity string) (decimal.Decimal, error) {
	loop, err := ParseQuantity(quantity)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(loop, -ICXDecimals), nil
}

// EncodeQuantity encodes a non-negative integer as a "0x"-prefixed hex quantity.
func EncodeQuantity(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 {
		return "", fmt.Errorf("%w: quantity must be non-negative", ErrInvalidAmount)
	}
	if v.BitLen() > 256 {
		return "", fmt.Errorf("%w: quantity exceeds 256 bits", ErrInvalidAmount)
	}
	return hexutil.EncodeBig(v), nil
}

// Quantity encodes n as a "0x"-prefixed hex quantity.
func Quantity(n uint64) string {
	return hexutil.EncodeUint64(n)
}

// ParseQuantity decodes a hex quantity. The "0x" prefix is optional and leading zeros are accepted.
func ParseQuantity(quantity string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(quantity), "0x"), "0X")
	if digits == "" {
		return nil, fmt.Errorf("%w: empty hex quantity %q", ErrInvalidAmount, quantity)
	}
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	v, err := hexutil.DecodeBig("0x" + strings.ToLower(trimmed))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, quantity, err)
	}
	return v, nil
}
