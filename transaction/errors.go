package transaction

import "errors"

var (
	// ErrNotSigned is returned when a signature is requested from an unsigned transaction.
	ErrNotSigned = errors.New("transaction is not signed")

	// ErrSignerMismatch is returned when the signing key does not belong to the "from" address.
	ErrSignerMismatch = errors.New("signer does not match from address")
)
