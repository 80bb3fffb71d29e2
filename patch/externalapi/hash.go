// Package externalapi contains the value types PatchDB consumes from the
// rest of the node: transaction hashes, contract addresses, coin values,
// and the UTXO/Contract/TxReceipt records themselves. Nothing in this
// package knows about merge, purge, or validation — those live one layer
// up, in package patch.
package externalapi

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// HashSize is the fixed length, in bytes, of a Hash256.
const HashSize = 32

// ErrBadHash indicates a hash argument was not exactly HashSize bytes.
type ErrBadHash struct {
	Reason string
}

func (e ErrBadHash) Error() string { return e.Reason }

// ErrBadAddress indicates an address argument was malformed.
type ErrBadAddress struct {
	Reason string
}

func (e ErrBadAddress) Error() string { return e.Reason }

// Hash256 identifies a transaction. The zero value is not a valid hash;
// construct one with NewHash256FromBytes or NewHash256FromHex.
//
// Hash256 is comparable and is used directly as a map key throughout the
// patch package, which is what gives every hash key its canonical,
// lowercase-hex-equivalent form "for free": two Hash256 values constructed
// from the same bytes, however they were spelled by the caller, compare
// equal.
type Hash256 [HashSize]byte

// NewHash256FromBytes builds a Hash256 from a raw byte slice. It fails with
// ErrBadHash if the slice is not exactly HashSize bytes long.
func NewHash256FromBytes(b []byte) (Hash256, error) {
	var h Hash256
	if len(b) != HashSize {
		return h, errors.WithStack(ErrBadHash{
			Reason: fmt.Sprintf("bad hash: expected %d bytes, got %d", HashSize, len(b)),
		})
	}
	copy(h[:], b)
	return h, nil
}

// NewHash256FromHex builds a Hash256 from its hexadecimal string form,
// accepting either case. It fails with ErrBadHash if the string does not
// decode to exactly HashSize bytes.
func NewHash256FromHex(s string) (Hash256, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash256{}, errors.WithStack(ErrBadHash{
			Reason: fmt.Sprintf("bad hash hex %q: %s", s, err),
		})
	}
	return NewHash256FromBytes(b)
}

// String returns the lowercase hexadecimal form of the hash.
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the hash's underlying bytes.
func (h Hash256) Bytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// Address identifies a contract. Unlike Hash256 it has no fixed length, so
// it's stored internally as its canonical lowercase-hex string rather than
// as a byte array — this keeps it comparable (usable as a map key) without
// imposing a size.
type Address string

// NewAddressFromBytes builds an Address from raw bytes.
func NewAddressFromBytes(b []byte) Address {
	return Address(hex.EncodeToString(b))
}

// NewAddressFromHex builds an Address from its hexadecimal form, accepting
// either case. It fails with ErrBadAddress if the string is not valid hex.
func NewAddressFromHex(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.WithStack(ErrBadAddress{
			Reason: fmt.Sprintf("bad address hex %q: %s", s, err),
		})
	}
	return NewAddressFromBytes(b), nil
}

// String returns the lowercase hexadecimal form of the address.
func (a Address) String() string {
	return string(a)
}

// Bytes decodes the address back to raw bytes.
func (a Address) Bytes() []byte {
	b, _ := hex.DecodeString(string(a))
	return b
}
