package externalapi

import (
	"bytes"

	"github.com/pkg/errors"
)

// Contract is a witness-group-scoped piece of speculative contract state.
// Its data buffer is opaque to the patch package; only the address and
// group id are ever inspected during merge.
type Contract struct {
	address Address
	groupID uint64
	data    []byte
}

// NewContract decodes a Contract from its encoded form, binding it to
// storedAddress. A Contract's encoded form carries its group id and data
// buffer (NewContractState builds one from those parts directly), and
// re-decoding against the same
// address is also how Contract.Clone works, per the source's convention
// that a Contract is only ever cloned by round-tripping through Encode.
func NewContract(encodedBytes []byte, storedAddress Address) (*Contract, error) {
	if len(encodedBytes) < 8 {
		return nil, errors.Errorf("bad contract encoding: expected at least 8 bytes, got %d", len(encodedBytes))
	}
	groupID := uint64(0)
	for i := 0; i < 8; i++ {
		groupID = groupID<<8 | uint64(encodedBytes[i])
	}
	data := make([]byte, len(encodedBytes)-8)
	copy(data, encodedBytes[8:])
	return &Contract{address: storedAddress, groupID: groupID, data: data}, nil
}

// NewContractState constructs a fresh Contract for the given address,
// group, and initial data buffer.
func NewContractState(address Address, groupID uint64, data []byte) *Contract {
	c := &Contract{address: address, groupID: groupID}
	c.UpdateData(data)
	return c
}

// Address returns the contract's stored address.
func (c *Contract) Address() Address {
	return c.address
}

// GroupID returns the witness group this contract belongs to.
func (c *Contract) GroupID() uint64 {
	return c.groupID
}

// Data returns the contract's current data buffer. The caller must not
// mutate the returned slice; use UpdateData to change it.
func (c *Contract) Data() []byte {
	return c.data
}

// UpdateData replaces the contract's data buffer.
func (c *Contract) UpdateData(newData []byte) {
	data := make([]byte, len(newData))
	copy(data, newData)
	c.data = data
}

// Encode serializes the contract's group id and data buffer to bytes. The
// stored address is not part of the encoding — it travels alongside the
// contract, never inside it, which is why NewContract takes it as a
// separate argument.
func (c *Contract) Encode() []byte {
	out := make([]byte, 8+len(c.data))
	groupID := c.groupID
	for i := 7; i >= 0; i-- {
		out[i] = byte(groupID)
		groupID >>= 8
	}
	copy(out[8:], c.data)
	return out
}

// Clone returns a deep copy of c, obtained by re-decoding its encoded form
// against the same address.
func (c *Contract) Clone() *Contract {
	clone, err := NewContract(c.Encode(), c.address)
	if err != nil {
		// Encode always produces a value NewContract can decode; a failure
		// here would mean the two are out of sync with each other.
		panic(err)
	}
	return clone
}

// DataEqual reports whether c and other carry byte-identical data buffers.
// It does not compare address or group id.
func (c *Contract) DataEqual(other *Contract) bool {
	return bytes.Equal(c.data, other.data)
}
