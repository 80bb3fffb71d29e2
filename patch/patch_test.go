package patch

import (
	"errors"
	"testing"

	"github.com/nexachain/patchdb/patch/externalapi"
)

func TestSetGroupIDBindsOnce(t *testing.T) {
	p := New(nil)

	if _, bound := p.GroupID(); bound {
		t.Fatalf("a fresh patch should not be bound to any group")
	}

	if err := p.SetGroupID(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, bound := p.GroupID()
	if !bound || g != 7 {
		t.Fatalf("expected patch bound to group 7, got (%d, %t)", g, bound)
	}

	err := p.SetGroupID(8)
	if err == nil {
		t.Fatalf("expected ErrAlreadyBound on a second SetGroupID call")
	}
	var alreadyBound ErrAlreadyBound
	if !errors.As(err, &alreadyBound) {
		t.Fatalf("expected ErrAlreadyBound, got %v", err)
	}
	if alreadyBound.GroupID != 7 {
		t.Fatalf("expected the error to report group 7, got %d", alreadyBound.GroupID)
	}
}

func TestSetGroupIDBumpsLevel(t *testing.T) {
	p := New(nil)
	if err := p.SetGroupID(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	level, err := p.GetLevel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 1 {
		t.Fatalf("expected level 1 after binding a fresh patch, got %d", level)
	}
}

func TestGetLevelWithoutExplicitGroupRequiresBinding(t *testing.T) {
	p := New(nil)
	if _, err := p.GetLevel(); err == nil {
		t.Fatalf("expected ErrGroupNotSet on an unbound patch with no explicit group")
	}

	level, err := p.GetLevel(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 0 {
		t.Fatalf("a group the patch never touched should report level 0, got %d", level)
	}
}

func TestNewWithGroupIDBindsImmediately(t *testing.T) {
	g := uint64(5)
	p := New(&g)

	bound, ok := p.GroupID()
	if !ok || bound != 5 {
		t.Fatalf("expected patch constructed with a group id to already be bound")
	}
}

func TestComplexityCountsSpentOutputs(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)
	txB := testHash(t, 2)

	if err := p.CreateCoins(txA, 0, externalapi.NewCoins(1, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.CreateCoins(txA, 1, externalapi.NewCoins(1, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Complexity() != 0 {
		t.Fatalf("a patch with no spends should have complexity 0, got %d", p.Complexity())
	}

	if err := p.SpendCoins(mustUTXO(p, txA), 0, txB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Complexity() != 1 {
		t.Fatalf("expected complexity 1 after one spend, got %d", p.Complexity())
	}

	if err := p.SpendCoins(mustUTXO(p, txA), 1, txB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Complexity() != 2 {
		t.Fatalf("expected complexity 2 after two spends, got %d", p.Complexity())
	}
}

func mustUTXO(p *Patch, txHash externalapi.Hash256) *externalapi.UTXO {
	utxo, ok := p.GetUTXO(txHash)
	if !ok {
		panic("test setup error: expected UTXO to be present")
	}
	return utxo
}
