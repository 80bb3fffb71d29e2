package patch

import "testing"

func TestSetAndGetReceipt(t *testing.T) {
	p := New(nil)
	txA := testHash(t, 1)

	p.SetReceipt(txA, stringReceipt("ok"))

	receipt, ok := p.GetReceipt(txA)
	if !ok || !receipt.Equal(stringReceipt("ok")) {
		t.Fatalf("expected to retrieve the receipt just set")
	}
}

func TestGetReceiptsReturnsEveryTransaction(t *testing.T) {
	p := New(nil)
	p.SetReceipt(testHash(t, 1), stringReceipt("a"))
	p.SetReceipt(testHash(t, 2), stringReceipt("b"))

	receipts := p.GetReceipts()
	if len(receipts) != 2 {
		t.Fatalf("expected 2 receipts, got %d", len(receipts))
	}
}
