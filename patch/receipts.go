package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// SetReceipt installs receipt into the patch, keyed by txHash, overwriting
// any existing local receipt for that transaction. Receipts are
// write-once in practice — the consensus layer above PatchDB is expected
// never to call this twice for the same hash with a different receipt —
// but PatchDB itself does not enforce that here; the check happens at
// merge time (ErrReceiptCollision).
func (p *Patch) SetReceipt(txHash externalapi.Hash256, receipt externalapi.TxReceipt) {
	p.receipts[txHash] = receipt
}

// GetReceipt returns the in-patch receipt for txHash, if any.
func (p *Patch) GetReceipt(txHash externalapi.Hash256) (externalapi.TxReceipt, bool) {
	receipt, ok := p.receipts[txHash]
	return receipt, ok
}

// GetReceipts returns every receipt currently held in the patch, keyed by
// transaction hash. The returned map is the patch's own; callers must not
// mutate it.
func (p *Patch) GetReceipts() map[externalapi.Hash256]externalapi.TxReceipt {
	return p.receipts
}
