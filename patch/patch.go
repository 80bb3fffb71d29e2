// Package patch implements PatchDB: an in-memory, mergeable, speculative
// state-delta layer sitting between block execution and durable storage.
//
// A Patch captures the effect of executing one or more blocks — spent
// outputs, newly created outputs, contract state transitions, and
// transaction receipts — against a stable on-disk baseline, without
// mutating that baseline. Patches merge pairwise to build up a chain
// branch's effect, purge against a now-stable layer to bound memory, and
// validate against the durable baseline to catch double-spends.
//
// PatchDB is single-writer: each Patch is owned by exactly one executor
// context at a time, and none of its operations take an internal lock.
// Callers that race to build patches from the same stable baseline must
// serialize around the baseline themselves; a Patch is a plain value that
// can be handed between executor tasks freely.
package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// Patch is a speculative delta over a stable UTXO baseline. See the
// package doc for the concurrency contract.
type Patch struct {
	groupID    *uint64
	groupLevel map[uint64]uint64

	coinStore   map[externalapi.Hash256]*externalapi.UTXO
	spentOutput map[externalapi.Hash256]map[uint32]externalapi.Hash256
	contracts   map[externalapi.Address]*externalapi.Contract
	receipts    map[externalapi.Hash256]externalapi.TxReceipt
}

// New constructs an empty patch. If groupID is non-nil the patch is bound
// to that group immediately, as if SetGroupID had been called.
func New(groupID *uint64) *Patch {
	p := &Patch{
		groupLevel:  make(map[uint64]uint64),
		coinStore:   make(map[externalapi.Hash256]*externalapi.UTXO),
		spentOutput: make(map[externalapi.Hash256]map[uint32]externalapi.Hash256),
		contracts:   make(map[externalapi.Address]*externalapi.Contract),
		receipts:    make(map[externalapi.Hash256]externalapi.TxReceipt),
	}
	if groupID != nil {
		// New patches created with a group id bind exactly like an
		// explicit SetGroupID call; the error is impossible here since a
		// freshly constructed patch is never already bound.
		_ = p.SetGroupID(*groupID)
	}
	return p
}

// GroupID returns the patch's bound group id, and whether one is bound.
func (p *Patch) GroupID() (uint64, bool) {
	if p.groupID == nil {
		return 0, false
	}
	return *p.groupID, true
}

// SetGroupID binds the patch to group g. Binding is allowed exactly once
// per patch; a second call fails with ErrAlreadyBound. Binding increments
// the group's level by one, starting from whatever level the patch
// inherited (0 for a freshly-created patch, the merged max for the result
// of a Merge).
func (p *Patch) SetGroupID(g uint64) error {
	if p.groupID != nil {
		return NewErrAlreadyBound(*p.groupID)
	}
	p.groupID = &g
	p.groupLevel[g] = p.groupLevel[g] + 1
	return nil
}

// GetLevel returns the level for group g. With no argument it returns the
// level for the patch's bound group, failing with ErrGroupNotSet if none
// is bound. A group the patch has never touched has level 0.
func (p *Patch) GetLevel(g ...uint64) (uint64, error) {
	var group uint64
	switch len(g) {
	case 0:
		if p.groupID == nil {
			return 0, NewErrGroupNotSet()
		}
		group = *p.groupID
	case 1:
		group = g[0]
	default:
		return 0, NewErrGroupNotSet()
	}
	return p.groupLevel[group], nil
}

// Complexity returns the total count of spent outputs across all
// transactions in this patch: Σ_h |spent_output[h]|. Used by the
// block-selection layer as a secondary tie-breaker among candidate
// patches; higher complexity wins.
func (p *Patch) Complexity() int {
	total := 0
	for _, spent := range p.spentOutput {
		total += len(spent)
	}
	return total
}
