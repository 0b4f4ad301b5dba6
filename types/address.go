package types

import (
	"fmt"
	"regexp"
)

const (
	// AccountPrefix marks an externally owned account address.
	AccountPrefix = "hx"

	// ContractPrefix marks a smart contract (SCORE) address.
	ContractPrefix = "cx"

	// AddressLength is the length of an address string: prefix plus 40 hex characters.
	AddressLength = 42
)

var addressPattern = regexp.MustCompile("^(hx|cx)[0-9a-f]{40}$")

// Address is an account ("hx...") or contract ("cx...") identifier.
type Address string

// String converts Address to string
func (a Address) String() string {
	return string(a)
}

// IsValid checks if the address is a well-formed account or contract address
func (a Address) IsValid() bool {
	return addressPattern.MatchString(string(a))
}

// IsAccount returns true for "hx" addresses
func (a Address) IsAccount() bool {
	return a.IsValid() && a[:2] == AccountPrefix
}

// IsContract returns true for "cx" addresses
func (a Address) IsContract() bool {
	return a.IsValid() && a[:2] == ContractPrefix
}

// ParseAddress validates s and returns it as an Address.
func ParseAddress(s string) (Address, error) {
	a := Address(s)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return a, nil
}
