package patch

import (
	"testing"

	"github.com/nexachain/patchdb/patch/externalapi"
)

// testHash builds a distinct Hash256 for tests, seeded by b so callers can
// produce several non-colliding hashes cheaply.
func testHash(t *testing.T, b byte) externalapi.Hash256 {
	raw := make([]byte, externalapi.HashSize)
	raw[0] = b
	h, err := externalapi.NewHash256FromBytes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h
}

func testAddress(b byte) externalapi.Address {
	return externalapi.NewAddressFromBytes([]byte{b})
}

// stringReceipt is a minimal externalapi.TxReceipt implementation used only
// by this package's tests — PatchDB itself never constructs a concrete
// receipt type, since receipts are opaque values supplied by the host.
type stringReceipt string

func (r stringReceipt) Equal(other externalapi.TxReceipt) bool {
	o, ok := other.(stringReceipt)
	return ok && r == o
}

func (r stringReceipt) Clone() externalapi.TxReceipt {
	return r
}
