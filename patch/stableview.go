package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// StableViewIterator walks a durably-committed UTXO set one entry at a
// time. It is the interface PatchDB consumes from the storage layer: the
// storage layer's own disk layout is out of scope for this package, but
// building a stable baseline patch from whatever
// that layer exposes is in scope.
//
// Iteration follows the same First/Next/Get shape as the node's
// read-only UTXO set iterator, so a storage layer that already implements
// that shape needs no adapter.
type StableViewIterator interface {
	First() bool
	Next() bool
	Get() (txHash externalapi.Hash256, utxo *externalapi.UTXO, err error)
}

// LoadStableBaseline drains iter into a fresh patch meant to be used as
// the read-only "stable" argument to Purge and ValidateAgainstStable. The
// returned patch is a plain Patch value — nothing distinguishes a stable
// baseline from any other patch except how the caller uses it, matching
// spec's own framing of validation and purge as patch-against-patch
// operations.
func LoadStableBaseline(iter StableViewIterator) (*Patch, error) {
	baseline := New(nil)
	for iter.First(); ; {
		if !iter.Next() {
			break
		}
		_, utxo, err := iter.Get()
		if err != nil {
			return nil, err
		}
		baseline.SetUTXO(utxo)
	}
	return baseline, nil
}

// memorySliceIterator is a minimal, non-durable StableViewIterator over an
// in-memory slice of UTXOs. It exists so PatchDB's stable-baseline
// consumers (ValidateAgainstStable, Purge) are exercisable and testable
// without wiring up a real storage layer, which is explicitly out of
// scope. It is not a substitute for one.
type memorySliceIterator struct {
	utxos []*externalapi.UTXO
	index int
}

// NewMemoryStableView builds a StableViewIterator over utxos, held
// entirely in memory. Intended for tests and the demo CLI, not for
// production use as a durable baseline.
func NewMemoryStableView(utxos []*externalapi.UTXO) StableViewIterator {
	return &memorySliceIterator{utxos: utxos, index: -1}
}

func (m *memorySliceIterator) First() bool {
	m.index = -1
	return len(m.utxos) > 0
}

func (m *memorySliceIterator) Next() bool {
	m.index++
	return m.index < len(m.utxos)
}

func (m *memorySliceIterator) Get() (externalapi.Hash256, *externalapi.UTXO, error) {
	utxo := m.utxos[m.index]
	return utxo.TxHash(), utxo, nil
}
