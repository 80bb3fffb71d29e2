package externalapi

import (
	"fmt"
	"sort"
	"strings"
)

// UTXO is the set of surviving output indices, and their coin values, for a
// single transaction. A UTXO with no live indices is still a valid value:
// it represents a fully-spent transaction that a patch keeps tracking
// until it is purged against a stable baseline.
type UTXO struct {
	txHash  Hash256
	entries map[uint32]Coins
}

// NewUTXO constructs an empty UTXO for the given transaction hash.
func NewUTXO(txHash Hash256) *UTXO {
	return &UTXO{txHash: txHash, entries: make(map[uint32]Coins)}
}

// TxHash returns the transaction hash this UTXO belongs to.
func (u *UTXO) TxHash() Hash256 {
	return u.txHash
}

// Indexes returns the sorted set of currently live output indices.
// Sorted so that callers (and String) get deterministic output despite the
// underlying map having no defined iteration order.
func (u *UTXO) Indexes() []uint32 {
	indexes := make([]uint32, 0, len(u.entries))
	for idx := range u.entries {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })
	return indexes
}

// Len returns the number of live indices.
func (u *UTXO) Len() int {
	return len(u.entries)
}

// CoinsAt returns the coins at idx, and whether idx is live.
func (u *UTXO) CoinsAt(idx uint32) (Coins, bool) {
	coins, ok := u.entries[idx]
	return coins, ok
}

// Spend removes idx from the live set. It reports false if idx was not
// live, leaving u unmodified.
func (u *UTXO) Spend(idx uint32) bool {
	if _, ok := u.entries[idx]; !ok {
		return false
	}
	delete(u.entries, idx)
	return true
}

// Add inserts coins at idx. It reports false if idx is already live,
// leaving u unmodified.
func (u *UTXO) Add(idx uint32, coins Coins) bool {
	if _, ok := u.entries[idx]; ok {
		return false
	}
	u.entries[idx] = coins
	return true
}

// Clone returns a deep copy of u.
func (u *UTXO) Clone() *UTXO {
	clone := &UTXO{txHash: u.txHash, entries: make(map[uint32]Coins, len(u.entries))}
	for idx, coins := range u.entries {
		clone.entries[idx] = coins.Clone()
	}
	return clone
}

// Equal reports whether u and other have the same transaction hash and the
// same live indices with equal coins at each.
func (u *UTXO) Equal(other *UTXO) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.txHash != other.txHash || len(u.entries) != len(other.entries) {
		return false
	}
	for idx, coins := range u.entries {
		otherCoins, ok := other.entries[idx]
		if !ok || !coins.Equal(otherCoins) {
			return false
		}
	}
	return true
}

func (u *UTXO) String() string {
	indexes := u.Indexes()
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		coins := u.entries[idx]
		parts[i] = fmt.Sprintf("%d:%d", idx, coins.Amount)
	}
	return fmt.Sprintf("%s{%s}", u.txHash, strings.Join(parts, ","))
}
