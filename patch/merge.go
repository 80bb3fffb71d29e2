package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// Merge combines l and r into a new patch. The result carries no bound
// group id — a subsequent SetGroupID bumps from the unioned max level, not
// from zero, mirroring the source this package was ported from.
//
// Four independent sections run against the union of each side's key
// sets: group levels take the per-group max; the coin store and
// spent-output index detect double-spends and otherwise carry forward
// whichever side (or both, intersected) has a claim to a transaction;
// contract state resolves same-address conflicts by group level, refusing
// to resolve a cross-group conflict; receipts require structural equality
// when both sides have one.
func Merge(l, r *Patch) (*Patch, error) {
	log.Debugf("merge start")
	defer log.Debugf("merge end")

	m := New(nil)

	mergeGroupLevels(m, l, r)

	if err := mergeCoinStore(m, l, r); err != nil {
		return nil, err
	}

	if err := mergeSpentOutputs(m, l, r); err != nil {
		return nil, err
	}

	if err := mergeContracts(m, l, r); err != nil {
		return nil, err
	}

	if err := mergeReceipts(m, l, r); err != nil {
		return nil, err
	}

	return m, nil
}

// Merge is the method form of the package-level Merge function: it merges
// p with other and returns the combined patch, leaving both p and other
// untouched.
func (p *Patch) Merge(other *Patch) (*Patch, error) {
	return Merge(p, other)
}

func mergeGroupLevels(m, l, r *Patch) {
	for g, level := range l.groupLevel {
		m.groupLevel[g] = level
	}
	for g, level := range r.groupLevel {
		if level > m.groupLevel[g] {
			m.groupLevel[g] = level
		}
	}
}

// mergeCoinStore fills m.coinStore for every transaction hash that either
// l or r has a UTXO record for. A hash known to only one side is copied
// through unchanged (cloned); a hash known to both is reduced to the
// intersection of their live indices, since an index live on only one
// side was necessarily spent by the other during this merge window.
func mergeCoinStore(m, l, r *Patch) error {
	for txHash, lUTXO := range l.coinStore {
		rUTXO, ok := r.coinStore[txHash]
		if !ok {
			log.Tracef("merge coin store: %s known only to l, copied through", txHash)
			m.coinStore[txHash] = lUTXO.Clone()
			continue
		}
		log.Tracef("merge coin store: %s known to both sides, intersecting live indices", txHash)
		m.coinStore[txHash] = intersectUTXO(lUTXO, rUTXO)
	}
	for txHash, rUTXO := range r.coinStore {
		if _, ok := l.coinStore[txHash]; ok {
			continue // already handled above
		}
		log.Tracef("merge coin store: %s known only to r, copied through", txHash)
		m.coinStore[txHash] = rUTXO.Clone()
	}
	return nil
}

func intersectUTXO(l, r *externalapi.UTXO) *externalapi.UTXO {
	merged := externalapi.NewUTXO(l.TxHash())
	for _, idx := range l.Indexes() {
		if _, ok := r.CoinsAt(idx); ok {
			lCoins, _ := l.CoinsAt(idx)
			merged.Add(idx, lCoins.Clone())
			continue
		}
		log.Tracef("merge coin store: %s:%d live on only one side, dropped", l.TxHash(), idx)
	}
	return merged
}

// mergeSpentOutputs fills m.spentOutput for every transaction hash either
// side has spend evidence for. A hash known to only one side is copied
// through; a hash known to both requires every commonly-spent index to
// name the same spending transaction, else ErrDoubleSpend.
func mergeSpentOutputs(m, l, r *Patch) error {
	for txHash, lSpent := range l.spentOutput {
		rSpent, ok := r.spentOutput[txHash]
		if !ok {
			log.Tracef("merge spent outputs: %s known only to l, copied through", txHash)
			m.spentOutput[txHash] = cloneSpentMap(lSpent)
			continue
		}
		log.Tracef("merge spent outputs: %s known to both sides, reconciling", txHash)
		merged, err := mergeSpentMaps(txHash, lSpent, rSpent)
		if err != nil {
			return err
		}
		m.spentOutput[txHash] = merged
	}
	for txHash, rSpent := range r.spentOutput {
		if _, ok := l.spentOutput[txHash]; ok {
			continue // already handled above
		}
		log.Tracef("merge spent outputs: %s known only to r, copied through", txHash)
		m.spentOutput[txHash] = cloneSpentMap(rSpent)
	}
	return nil
}

func cloneSpentMap(spent map[uint32]externalapi.Hash256) map[uint32]externalapi.Hash256 {
	clone := make(map[uint32]externalapi.Hash256, len(spent))
	for idx, spendingTxHash := range spent {
		clone[idx] = spendingTxHash
	}
	return clone
}

func mergeSpentMaps(txHash externalapi.Hash256, l, r map[uint32]externalapi.Hash256) (
	map[uint32]externalapi.Hash256, error) {

	merged := make(map[uint32]externalapi.Hash256, len(l)+len(r))
	for idx, spendingTxHash := range l {
		merged[idx] = spendingTxHash
	}
	for idx, spendingTxHash := range r {
		if existing, ok := merged[idx]; ok {
			if existing != spendingTxHash {
				log.Tracef("merge spent outputs: double spend of %s:%d (%s vs %s)",
					txHash, idx, existing, spendingTxHash)
				return nil, NewErrDoubleSpend(txHash, idx)
			}
			continue
		}
		merged[idx] = spendingTxHash
	}
	return merged, nil
}

// mergeContracts fills m.contracts for every address either side holds
// state for. An address known to only one side is cloned through; an
// address known to both must be bound to the same group on each side
// (cross-group contract merges are unsolved by design — see the source
// comment this preserves), and the side with the greater group level
// wins, ties breaking to l.
func mergeContracts(m, l, r *Patch) error {
	for addr, lContract := range l.contracts {
		rContract, ok := r.contracts[addr]
		if !ok {
			log.Tracef("merge contracts: %s known only to l, copied through", addr)
			m.contracts[addr] = lContract.Clone()
			continue
		}
		if lContract.GroupID() != rContract.GroupID() {
			log.Tracef("merge contracts: %s bound to different groups on each side (%d vs %d)",
				addr, lContract.GroupID(), rContract.GroupID())
			return NewErrContractGroupMismatch(addr)
		}
		group := lContract.GroupID()
		winner := lContract
		if r.groupLevel[group] > l.groupLevel[group] {
			winner = rContract
		}
		log.Tracef("merge contracts: %s resolved by group level, winner took %d bytes", addr, len(winner.Data()))
		m.contracts[addr] = winner.Clone()
	}
	for addr, rContract := range r.contracts {
		if _, ok := l.contracts[addr]; ok {
			continue // already handled above
		}
		log.Tracef("merge contracts: %s known only to r, copied through", addr)
		m.contracts[addr] = rContract.Clone()
	}
	return nil
}

// mergeReceipts fills m.receipts for every transaction hash either side
// has a receipt for. A hash known to both sides requires structurally
// equal receipts, else ErrReceiptCollision.
func mergeReceipts(m, l, r *Patch) error {
	for txHash, lReceipt := range l.receipts {
		rReceipt, ok := r.receipts[txHash]
		if !ok {
			log.Tracef("merge receipts: %s known only to l, copied through", txHash)
			m.receipts[txHash] = lReceipt.Clone()
			continue
		}
		if !lReceipt.Equal(rReceipt) {
			log.Tracef("merge receipts: %s has conflicting receipts on each side", txHash)
			return NewErrReceiptCollision(txHash)
		}
		log.Tracef("merge receipts: %s known to both sides, receipts agree", txHash)
		m.receipts[txHash] = lReceipt.Clone()
	}
	for txHash, rReceipt := range r.receipts {
		if _, ok := l.receipts[txHash]; ok {
			continue // already handled above
		}
		log.Tracef("merge receipts: %s known only to r, copied through", txHash)
		m.receipts[txHash] = rReceipt.Clone()
	}
	return nil
}
