package value

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

const (
	// MaxAddressLength is the longest base58 rendering of a 32-byte key.
	MaxAddressLength = 44
	addressKeyLength = 32
)

var (
	ErrEmptyAddress     = fmt.Errorf("address is empty")
	ErrAddressTooLong   = fmt.Errorf("address is longer than %d characters", MaxAddressLength)
	ErrAddressMalformed = fmt.Errorf("address is not a base58 encoded %d-byte key", addressKeyLength)
)

// Address is a ledger account address in its base58 text form.
type Address string

func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return "", ErrEmptyAddress
	case len(s) > MaxAddressLength:
		return "", ErrAddressTooLong
	case len(base58.Decode(s)) != addressKeyLength:
		return "", ErrAddressMalformed
	}

	return Address(s), nil
}

// AddressFromKey encodes a raw 32-byte key.
func AddressFromKey(key [32]byte) Address {
	return Address(base58.Encode(key[:]))
}

func (a Address) String() string {
	return string(a)
}

func (a Address) IsZero() bool {
	return a == ""
}

// Key returns the decoded key bytes; nil for a malformed address.
func (a Address) Key() []byte {
	key := base58.Decode(string(a))
	if len(key) != addressKeyLength {
		return nil
	}

	return key
}

// Short renders the address the way transaction tables show it: abc..wxyz.
func (a Address) Short() string {
	const head, tail = 3, 4

	if len(a) <= head+tail {
		return string(a)
	}

	return string(a[:head]) + ".." + string(a[len(a)-tail:])
}
