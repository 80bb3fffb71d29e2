package patch

import (
	"encoding/binary"

	"github.com/kaspanet/go-secp256k1"
	"github.com/nexachain/patchdb/patch/externalapi"
)

// Commitment returns an order-independent EC-multiset digest of the
// patch's live coin store: every (tx hash, output index, coins) triple
// still live is folded into the multiset, so two patches with the same
// live UTXO content hash to the same commitment regardless of map
// iteration order or insertion history.
//
// This is not consensus-critical here — PatchDB has nothing external to
// check the digest against — it exists as a cheap accessor alongside
// Complexity for the block-selection layer to compare candidate patches,
// the same way a per-block multiset backs a UTXO commitment check.
func (p *Patch) Commitment() externalapi.Hash256 {
	ms := secp256k1.NewMultiset()
	for txHash, utxo := range p.coinStore {
		for _, idx := range utxo.Indexes() {
			coins, _ := utxo.CoinsAt(idx)
			ms.Add(serializeUTXOEntry(txHash, idx, coins))
		}
	}
	finalized := ms.Finalize()
	hashArray := (*[secp256k1.HashSize]byte)(finalized)
	hash, _ := externalapi.NewHash256FromBytes(hashArray[:])
	return hash
}

// serializeUTXOEntry produces the canonical bytes fed to the multiset for
// a single live output: transaction hash, output index, coin amount, and
// lock script, in that order.
func serializeUTXOEntry(txHash externalapi.Hash256, index uint32, coins externalapi.Coins) []byte {
	out := make([]byte, 0, externalapi.HashSize+4+8+len(coins.LockScript))
	out = append(out, txHash.Bytes()...)

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)
	out = append(out, indexBytes[:]...)

	var amountBytes [8]byte
	binary.BigEndian.PutUint64(amountBytes[:], uint64(coins.Amount))
	out = append(out, amountBytes[:]...)

	out = append(out, coins.LockScript...)
	return out
}
