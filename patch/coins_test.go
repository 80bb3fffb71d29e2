package patch

import (
	"errors"
	"testing"

	"github.com/nexachain/patchdb/patch/externalapi"
)

func TestCreateThenSpendSamePatch(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)
	spender := testHash(t, 2)

	if err := p.CreateCoins(txA, 0, externalapi.NewCoins(1000, []byte("script"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	utxo := mustUTXO(p, txA)
	if err := p.SpendCoins(utxo, 0, spender); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spent, ok := p.SpentOutputs(txA)
	if !ok || spent[0] != spender {
		t.Fatalf("expected index 0 of %s recorded as spent by %s", txA, spender)
	}

	if _, live := mustUTXO(p, txA).CoinsAt(0); live {
		t.Fatalf("index 0 should no longer be live after being spent")
	}
}

func TestDoubleSpendWithinSamePatchIsRejected(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)
	spenderA := testHash(t, 2)
	spenderB := testHash(t, 3)

	if err := p.CreateCoins(txA, 0, externalapi.NewCoins(1000, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.SpendCoins(mustUTXO(p, txA), 0, spenderA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := p.SpendCoins(mustUTXO(p, txA), 0, spenderB)
	if err == nil {
		t.Fatalf("expected an error spending an already-spent index within the same patch")
	}
	var invalidIndex ErrInvalidIndex
	if !errors.As(err, &invalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestCreateCoinsRejectsExistingIndex(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)

	if err := p.CreateCoins(txA, 0, externalapi.NewCoins(1, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.CreateCoins(txA, 0, externalapi.NewCoins(2, nil)); err == nil {
		t.Fatalf("expected an error creating an already-occupied index")
	}
}

func TestSpendCoinsInstallsSnapshotWhenNoLocalRecord(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)
	spender := testHash(t, 2)

	upstream := externalapi.NewUTXO(txA)
	upstream.Add(0, externalapi.NewCoins(1000, []byte("script")))
	upstream.Add(1, externalapi.NewCoins(2000, []byte("script2")))

	if err := p.SpendCoins(upstream, 0, spender); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	local := mustUTXO(p, txA)
	if _, live := local.CoinsAt(0); live {
		t.Fatalf("index 0 should have been consumed in the local copy")
	}
	if _, live := local.CoinsAt(1); !live {
		t.Fatalf("index 1 should still be live in the local copy")
	}
	if _, live := upstream.CoinsAt(0); !live {
		t.Fatalf("SpendCoins must not mutate the caller's snapshot")
	}
}

func TestSetAndGetUTXOClones(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)

	utxo := externalapi.NewUTXO(txA)
	utxo.Add(0, externalapi.NewCoins(1, nil))
	p.SetUTXO(utxo)

	utxo.Add(1, externalapi.NewCoins(2, nil))

	stored := mustUTXO(p, txA)
	if _, live := stored.CoinsAt(1); live {
		t.Fatalf("SetUTXO should clone its argument, not alias it")
	}
}

func TestGetCoinsReturnsEveryEntry(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)
	txB := testHash(t, 2)

	p.CreateCoins(txA, 0, externalapi.NewCoins(1, nil))
	p.CreateCoins(txB, 0, externalapi.NewCoins(2, nil))

	entries := p.GetCoins()
	if len(entries) != 2 {
		t.Fatalf("expected 2 coin entries, got %d", len(entries))
	}
}
