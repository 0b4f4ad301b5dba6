package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/blockberries/icon-sdk-go/types"
)

// Call is the "data" of a call transaction: a SCORE method and its params.
type Call struct {
	Method string

	// Params is an object, or null to omit the key.
	Params types.Value
}

// Builder collects the fields of a request. The zero value builds an
// icx_sendTransaction; Build validates and produces an immutable-by-convention
// Transaction.
type Builder struct {
	// Method defaults to MethodSendTransaction.
	Method string

	// ID defaults to DefaultID.
	ID int64

	From types.Address
	To   types.Address

	// Value is either a decimal ICX amount ("1.5") or a 0x-prefixed loop quantity.
	Value string

	// Version, NID, Nonce and StepLimit are 0x-prefixed hex quantities.
	Version   string
	NID       string
	Nonce     string
	StepLimit string

	// Timestamp is sent for icx_sendTransaction as hex microseconds.
	// Zero means the time of Build.
	Timestamp time.Time

	// Message sets dataType "message" with the UTF-8 text as 0x hex data.
	Message string

	// Call sets dataType "call". Message and Call are mutually exclusive.
	Call *Call

	// Query holds extra string params for read-only requests
	// (height, hash, address, txHash, ...).
	Query map[string]string
}

// Build validates the builder and returns the request.
func (b Builder) Build() (*Transaction, error) {
	method := b.Method
	if method == "" {
		method = MethodSendTransaction
	}
	id := b.ID
	if id == 0 {
		id = DefaultID
	}

	params := types.Object()
	set := func(key, value string) {
		if value != "" {
			// params is always an object
			_ = params.Set(key, types.String(value))
		}
	}

	if err := b.validateAddresses(method); err != nil {
		return nil, err
	}
	set(ParamFrom, b.From.String())
	set(ParamTo, b.To.String())

	if b.Value != "" {
		value, err := normalizeValue(b.Value)
		if err != nil {
			return nil, err
		}
		set(ParamValue, value)
	}

	for _, q := range []struct{ key, value string }{
		{ParamVersion, b.Version},
		{ParamNID, b.NID},
		{ParamNonce, b.Nonce},
		{ParamStepLimit, b.StepLimit},
	} {
		if q.value == "" {
			continue
		}
		if err := checkQuantity(q.value); err != nil {
			return nil, fmt.Errorf("%s: %w", q.key, err)
		}
		set(q.key, q.value)
	}

	if method == MethodSendTransaction {
		ts := b.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		micros := ts.UnixMicro()
		if micros < 0 {
			return nil, fmt.Errorf("%w: timestamp before epoch", types.ErrMalformedValue)
		}
		set(ParamTimestamp, types.Quantity(uint64(micros)))
	}

	if err := b.setData(params); err != nil {
		return nil, err
	}

	for key, value := range b.Query {
		if _, exists := params.Get(key); exists || key == ParamSignature {
			return nil, fmt.Errorf("%w: query param %q collides with a transaction field", types.ErrMalformedValue, key)
		}
		_ = params.Set(key, types.String(value))
	}

	return &Transaction{id: id, method: method, params: params}, nil
}

func (b Builder) validateAddresses(method string) error {
	if b.From != "" && !b.From.IsAccount() {
		return fmt.Errorf("%w: from %q", types.ErrInvalidAddress, b.From)
	}
	if b.To != "" && !b.To.IsValid() {
		return fmt.Errorf("%w: to %q", types.ErrInvalidAddress, b.To)
	}
	switch method {
	case MethodSendTransaction:
		if b.From == "" || b.To == "" {
			return fmt.Errorf("%w: %s requires from and to", types.ErrInvalidAddress, method)
		}
	case MethodCall:
		if !b.To.IsContract() {
			return fmt.Errorf("%w: %s requires a contract address", types.ErrInvalidAddress, method)
		}
	}
	return nil
}

func (b Builder) setData(params types.Value) error {
	switch {
	case b.Message != "" && b.Call != nil:
		return fmt.Errorf("%w: message and call are mutually exclusive", types.ErrMalformedValue)
	case b.Message != "":
		_ = params.Set(ParamDataType, types.String(DataTypeMessage))
		_ = params.Set(ParamData, types.String(hexutil.Encode([]byte(b.Message))))
	case b.Call != nil:
		data, err := b.Call.value()
		if err != nil {
			return err
		}
		_ = params.Set(ParamDataType, types.String(DataTypeCall))
		_ = params.Set(ParamData, data)
	}
	return nil
}

func (c *Call) value() (types.Value, error) {
	if c.Method == "" {
		return types.Value{}, fmt.Errorf("%w: call method is required", types.ErrMalformedValue)
	}
	data := types.Object()
	_ = data.Set("method", types.String(c.Method))
	switch c.Params.Kind() {
	case types.KindNull:
	case types.KindObject:
		if err := c.Params.Validate(); err != nil {
			return types.Value{}, err
		}
		_ = data.Set("params", c.Params.Clone())
	default:
		return types.Value{}, fmt.Errorf("%w: call params must be an object, got %s", types.ErrMalformedValue, c.Params.Kind())
	}
	return data, nil
}

// normalizeValue accepts a 0x loop quantity as-is or converts a decimal ICX amount.
func normalizeValue(v string) (string, error) {
	if strings.HasPrefix(v, "0x") {
		if err := checkQuantity(v); err != nil {
			return "", fmt.Errorf("value: %w", err)
		}
		return v, nil
	}
	return types.ICXToHex(v)
}

func checkQuantity(q string) error {
	if !strings.HasPrefix(q, "0x") {
		return fmt.Errorf("%w: %q is missing the 0x prefix", types.ErrInvalidAmount, q)
	}
	_, err := types.ParseQuantity(q)
	return err
}
