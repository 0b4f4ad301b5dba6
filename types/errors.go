package types

import "errors"

var (
	// ErrMalformedValue indicates a Value Tree node with an unsupported type state,
	// a missing required field, or a field of the wrong kind.
	ErrMalformedValue = errors.New("malformed value")

	// ErrInvalidAddress indicates an address that is not "hx"/"cx" followed by 40 lowercase hex characters.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount indicates an ICX amount or hex quantity that cannot be converted.
	// Errors wrapping it also match ErrMalformedValue.
	ErrInvalidAmount = &amountError{}
)

// amountError lets amount failures be matched as both ErrInvalidAmount and ErrMalformedValue.
type amountError struct{}

func (*amountError) Error() string { return "invalid amount" }

func (*amountError) Unwrap() error { return ErrMalformedValue }
