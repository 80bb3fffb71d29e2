package patch

import (
	"testing"

	"github.com/nexachain/patchdb/patch/externalapi"
)

func TestEqualIgnoresBoundGroupID(t *testing.T) {
	txA := testHash(t, 1)

	b := New(nil)
	b.CreateCoins(txA, 0, externalapi.NewCoins(100, nil))
	if err := b.SetGroupID(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Binding bumps the group's level, which Equal does compare, so the
	// unbound side is built through Merge: same content and levels as b,
	// but no bound group id.
	a, err := Merge(b, New(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, bound := a.GroupID(); bound {
		t.Fatalf("test setup error: expected an unbound patch")
	}

	if !a.Equal(b) {
		t.Fatalf("Equal should ignore which group id is bound")
	}
}

func TestEqualDetectsDivergingContent(t *testing.T) {
	txA := testHash(t, 1)

	a := New(nil)
	a.CreateCoins(txA, 0, externalapi.NewCoins(100, nil))

	b := New(nil)
	b.CreateCoins(txA, 0, externalapi.NewCoins(200, nil))

	if a.Equal(b) {
		t.Fatalf("patches with different coin amounts should not be equal")
	}
}

func TestEqualNilHandling(t *testing.T) {
	var a, b *Patch
	if !a.Equal(b) {
		t.Fatalf("two nil patches should be equal")
	}
	if New(nil).Equal(nil) {
		t.Fatalf("a non-nil patch should never equal nil")
	}
}

func TestStringIsDeterministicAcrossInsertionOrder(t *testing.T) {
	txA := testHash(t, 1)
	txB := testHash(t, 2)

	a := New(nil)
	a.CreateCoins(txA, 0, externalapi.NewCoins(100, nil))
	a.CreateCoins(txB, 0, externalapi.NewCoins(200, nil))

	b := New(nil)
	b.CreateCoins(txB, 0, externalapi.NewCoins(200, nil))
	b.CreateCoins(txA, 0, externalapi.NewCoins(100, nil))

	if a.String() != b.String() {
		t.Fatalf("String should not depend on insertion order:\n%s\nvs\n%s", a.String(), b.String())
	}
}
