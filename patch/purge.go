package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// Purge removes from p any entity that is identical in both p and stable,
// the now-durable layer p was built on top of. Purge mutates p in place
// and never touches stable.
//
// A coin-store entry is removed only when both its UTXO and its
// spent-output sub-map are bytewise identical to stable's; any divergence
// in either means p has diverged from the baseline and must retain its
// delta. A contract is removed when its data buffer is byte-identical to
// stable's (the canonical, data-equality strategy — level-based removal
// is a cheaper but leakier alternative this package does not implement).
// A receipt is removed unconditionally whenever stable has one for the
// same hash, since receipts are write-once and equal when the hash
// matches.
func (p *Patch) Purge(stable *Patch) {
	log.Debugf("purge start")
	defer log.Debugf("purge end")

	for txHash, stableUTXO := range stable.coinStore {
		localUTXO, ok := p.coinStore[txHash]
		if !ok {
			continue
		}
		if localUTXO.Equal(stableUTXO) && spentOutputsEqual(p, stable, txHash) {
			log.Tracef("purge: %s identical to stable, dropping", txHash)
			delete(p.coinStore, txHash)
			delete(p.spentOutput, txHash)
			continue
		}
		log.Tracef("purge: %s diverges from stable, retained", txHash)
	}

	for addr, stableContract := range stable.contracts {
		localContract, ok := p.contracts[addr]
		if !ok {
			continue
		}
		if localContract.DataEqual(stableContract) {
			log.Tracef("purge: contract %s identical to stable, dropping", addr)
			delete(p.contracts, addr)
			continue
		}
		log.Tracef("purge: contract %s diverges from stable, retained", addr)
	}

	for txHash := range stable.receipts {
		log.Tracef("purge: receipt %s present in stable, dropping", txHash)
		delete(p.receipts, txHash)
	}
}

// spentOutputsEqual reports whether p and s have identical spent-output
// sub-maps for txHash: same key set, same spending-tx-hash value at every
// index. Two absent (or both-empty) sub-maps count as equal.
func spentOutputsEqual(p, s *Patch, txHash externalapi.Hash256) bool {
	pSpent := p.spentOutput[txHash]
	sSpent := s.spentOutput[txHash]
	if len(pSpent) != len(sSpent) {
		return false
	}
	for idx, spendingTxHash := range pSpent {
		other, ok := sSpent[idx]
		if !ok || other != spendingTxHash {
			return false
		}
	}
	return true
}
