package patch

// ValidateAgainstStable checks self against the read-only stable baseline
// stable. For every transaction hash self's coin store knows about, if
// stable has no UTXO record for it the hash is still pending in an
// ancestor patch and is skipped; otherwise every index self has recorded
// as spent must still be live in stable's UTXO — a spend of an index
// stable no longer has live means self attempts a double-spend against
// durably-committed history, reported as ErrStaleSpend.
//
// This is a read-only check: neither self nor stable is mutated.
func (p *Patch) ValidateAgainstStable(stable *Patch) error {
	log.Debugf("validate against stable start")
	defer log.Debugf("validate against stable end")

	for txHash := range p.coinStore {
		stableUTXO, ok := stable.coinStore[txHash]
		if !ok {
			log.Tracef("validate: %s not yet known to stable, skipped", txHash)
			continue
		}
		for idx := range p.spentOutput[txHash] {
			if _, live := stableUTXO.CoinsAt(idx); !live {
				log.Tracef("validate: %s:%d no longer live in stable", txHash, idx)
				return NewErrStaleSpend(txHash, idx)
			}
			log.Tracef("validate: %s:%d still live in stable", txHash, idx)
		}
	}
	return nil
}
