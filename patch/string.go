package patch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nexachain/patchdb/patch/externalapi"
)

// String renders the patch deterministically, sorted by key, for use in
// log lines and test failure messages. Map iteration order is
// unspecified (see the package doc); String never relies on it.
func (p *Patch) String() string {
	txHashes := make([]string, 0, len(p.coinStore))
	for txHash := range p.coinStore {
		txHashes = append(txHashes, txHash.String())
	}
	sort.Strings(txHashes)

	coinParts := make([]string, len(txHashes))
	for i, txHash := range txHashes {
		hash, _ := externalapi.NewHash256FromHex(txHash)
		coinParts[i] = p.coinStore[hash].String()
	}

	return fmt.Sprintf("Patch{coins: [%s], complexity: %d}", strings.Join(coinParts, ", "), p.Complexity())
}

// Equal reports whether p and other carry the same coin store,
// spent-output index, contract state, receipts, and group levels. It
// deliberately ignores which group id (if any) is bound, since Merge
// always produces an unbound result even when its inputs were bound —
// see the merge identity law in the package tests.
func (p *Patch) Equal(other *Patch) bool {
	if p == nil || other == nil {
		return p == other
	}

	if len(p.groupLevel) != len(other.groupLevel) {
		return false
	}
	for g, level := range p.groupLevel {
		if other.groupLevel[g] != level {
			return false
		}
	}

	if len(p.coinStore) != len(other.coinStore) {
		return false
	}
	for txHash, utxo := range p.coinStore {
		otherUTXO, ok := other.coinStore[txHash]
		if !ok || !utxo.Equal(otherUTXO) {
			return false
		}
	}

	if len(p.spentOutput) != len(other.spentOutput) {
		return false
	}
	for txHash := range p.spentOutput {
		if !spentOutputsEqual(p, other, txHash) {
			return false
		}
	}

	if len(p.contracts) != len(other.contracts) {
		return false
	}
	for addr, contract := range p.contracts {
		otherContract, ok := other.contracts[addr]
		if !ok || contract.GroupID() != otherContract.GroupID() || !contract.DataEqual(otherContract) {
			return false
		}
	}

	if len(p.receipts) != len(other.receipts) {
		return false
	}
	for txHash, receipt := range p.receipts {
		otherReceipt, ok := other.receipts[txHash]
		if !ok || !receipt.Equal(otherReceipt) {
			return false
		}
	}

	return true
}
