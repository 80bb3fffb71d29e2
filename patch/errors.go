package patch

import (
	"fmt"

	"github.com/nexachain/patchdb/patch/externalapi"
	"github.com/pkg/errors"
)

// PatchError identifies a violation of one of PatchDB's operations. The
// caller can use errors.As to determine which kind of failure occurred,
// mirroring the way a consensus layer distinguishes a typed rule
// violation from an ordinary Go error.
type PatchError struct {
	message string
	inner   error
}

// Error satisfies the error interface.
func (e PatchError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface.
func (e PatchError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface.
func (e PatchError) Cause() error {
	return e.inner
}

func newPatchError(message string, inner error) error {
	return errors.WithStack(PatchError{message: message, inner: inner})
}

// ErrInvalidIndex indicates spend_coins targeted an index that isn't live,
// or create_coins targeted an index that's already present.
type ErrInvalidIndex struct {
	TxHash externalapi.Hash256
	Index  uint32
}

func (e ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index %d for transaction %s", e.Index, e.TxHash)
}

// NewErrInvalidIndex creates a new ErrInvalidIndex wrapped in a PatchError.
func NewErrInvalidIndex(txHash externalapi.Hash256, index uint32) error {
	return newPatchError("ErrInvalidIndex", ErrInvalidIndex{TxHash: txHash, Index: index})
}

// ErrAlreadyBound indicates a second call to SetGroupID on the same patch.
type ErrAlreadyBound struct {
	GroupID uint64
}

func (e ErrAlreadyBound) Error() string {
	return fmt.Sprintf("patch is already bound to group %d", e.GroupID)
}

// NewErrAlreadyBound creates a new ErrAlreadyBound wrapped in a PatchError.
func NewErrAlreadyBound(groupID uint64) error {
	return newPatchError("ErrAlreadyBound", ErrAlreadyBound{GroupID: groupID})
}

// ErrGroupNotSet indicates GetLevel was called with no explicit group and
// no group bound to the patch.
type ErrGroupNotSet struct{}

func (e ErrGroupNotSet) Error() string {
	return "no group id bound to this patch and none was given"
}

// NewErrGroupNotSet creates a new ErrGroupNotSet wrapped in a PatchError.
func NewErrGroupNotSet() error {
	return newPatchError("ErrGroupNotSet", ErrGroupNotSet{})
}

// ErrDoubleSpend indicates merge found two distinct spending transactions
// for the same output. This is consensus-relevant: the caller must reject
// the offending block.
type ErrDoubleSpend struct {
	TxHash externalapi.Hash256
	Index  uint32
}

func (e ErrDoubleSpend) Error() string {
	return fmt.Sprintf("double spend of %s:%d", e.TxHash, e.Index)
}

// NewErrDoubleSpend creates a new ErrDoubleSpend wrapped in a PatchError.
func NewErrDoubleSpend(txHash externalapi.Hash256, index uint32) error {
	return newPatchError("ErrDoubleSpend", ErrDoubleSpend{TxHash: txHash, Index: index})
}

// ErrContractGroupMismatch indicates merge found a contract at the same
// address bound to different groups on the two sides. This is a
// programmer error: cross-group contract merges have no defined
// resolution.
type ErrContractGroupMismatch struct {
	Address externalapi.Address
}

func (e ErrContractGroupMismatch) Error() string {
	return fmt.Sprintf("contract at %s bound to different groups on each side of the merge", e.Address)
}

// NewErrContractGroupMismatch creates a new ErrContractGroupMismatch
// wrapped in a PatchError.
func NewErrContractGroupMismatch(address externalapi.Address) error {
	return newPatchError("ErrContractGroupMismatch", ErrContractGroupMismatch{Address: address})
}

// ErrReceiptCollision indicates merge found two structurally unequal
// receipts for the same transaction hash. Consensus-relevant.
type ErrReceiptCollision struct {
	TxHash externalapi.Hash256
}

func (e ErrReceiptCollision) Error() string {
	return fmt.Sprintf("conflicting receipts for transaction %s", e.TxHash)
}

// NewErrReceiptCollision creates a new ErrReceiptCollision wrapped in a
// PatchError.
func NewErrReceiptCollision(txHash externalapi.Hash256) error {
	return newPatchError("ErrReceiptCollision", ErrReceiptCollision{TxHash: txHash})
}

// ErrStaleSpend indicates validate_against_stable found a spend of an
// index that the stable baseline no longer has live — a double-spend
// against durably-committed history. Consensus-relevant.
type ErrStaleSpend struct {
	TxHash externalapi.Hash256
	Index  uint32
}

func (e ErrStaleSpend) Error() string {
	return fmt.Sprintf("stale spend of %s:%d against stable baseline", e.TxHash, e.Index)
}

// NewErrStaleSpend creates a new ErrStaleSpend wrapped in a PatchError.
func NewErrStaleSpend(txHash externalapi.Hash256, index uint32) error {
	return newPatchError("ErrStaleSpend", ErrStaleSpend{TxHash: txHash, Index: index})
}
