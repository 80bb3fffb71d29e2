package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// SpendCoins records the consumption of output index of utxoSnapshot's
// transaction by spendingTxHash. utxoSnapshot is the UTXO as it appears
// before this spend — from a preceding patch layer or the stable baseline.
//
// If this patch already has a local UTXO record for the transaction, that
// local copy is mutated; otherwise a clone of utxoSnapshot is installed
// first. Fails with ErrInvalidIndex if index is not currently live on the
// local record — which also catches a double-spend within this same
// patch, since a previously-spent index is no longer live.
func (p *Patch) SpendCoins(utxoSnapshot *externalapi.UTXO, index uint32, spendingTxHash externalapi.Hash256) error {
	txHash := utxoSnapshot.TxHash()

	local, ok := p.coinStore[txHash]
	if !ok {
		local = utxoSnapshot.Clone()
		p.coinStore[txHash] = local
	}

	if !local.Spend(index) {
		return NewErrInvalidIndex(txHash, index)
	}

	spent, ok := p.spentOutput[txHash]
	if !ok {
		spent = make(map[uint32]externalapi.Hash256)
		p.spentOutput[txHash] = spent
	}
	spent[index] = spendingTxHash

	log.Tracef("spent %s:%d via %s", txHash, index, spendingTxHash)
	return nil
}

// CreateCoins records a newly created output. If this patch already has a
// UTXO record for txHash, coins is inserted at index (failing with
// ErrInvalidIndex if index is already present); otherwise a fresh UTXO
// record is created.
func (p *Patch) CreateCoins(txHash externalapi.Hash256, index uint32, coins externalapi.Coins) error {
	local, ok := p.coinStore[txHash]
	if !ok {
		local = externalapi.NewUTXO(txHash)
		p.coinStore[txHash] = local
	}

	if !local.Add(index, coins) {
		return NewErrInvalidIndex(txHash, index)
	}

	log.Tracef("created %s:%d", txHash, index)
	return nil
}

// SetUTXO installs a clone of utxo into the patch, keyed by its
// transaction hash, overwriting any existing local record. Used during
// block-load to seed a patch directly from serialized data rather than
// building it up via SpendCoins/CreateCoins.
func (p *Patch) SetUTXO(utxo *externalapi.UTXO) {
	p.coinStore[utxo.TxHash()] = utxo.Clone()
}

// GetUTXO returns the in-patch UTXO record for txHash, if any.
func (p *Patch) GetUTXO(txHash externalapi.Hash256) (*externalapi.UTXO, bool) {
	utxo, ok := p.coinStore[txHash]
	return utxo, ok
}

// CoinEntry is a single (transaction hash, UTXO) pair as returned by
// GetCoins.
type CoinEntry struct {
	TxHash externalapi.Hash256
	UTXO   *externalapi.UTXO
}

// GetCoins returns every (tx_hash, UTXO) pair currently in the patch's
// coin store. The order is unspecified; callers that need determinism
// should sort the result themselves.
func (p *Patch) GetCoins() []CoinEntry {
	entries := make([]CoinEntry, 0, len(p.coinStore))
	for txHash, utxo := range p.coinStore {
		entries = append(entries, CoinEntry{TxHash: txHash, UTXO: utxo})
	}
	return entries
}

// SpentOutputs returns the spending transaction hash recorded for every
// output index of txHash that this patch has spent, keyed by output index,
// and whether the patch has any spend recorded for txHash. The returned
// map is the patch's own — callers must not mutate it.
func (p *Patch) SpentOutputs(txHash externalapi.Hash256) (map[uint32]externalapi.Hash256, bool) {
	spent, ok := p.spentOutput[txHash]
	return spent, ok
}
