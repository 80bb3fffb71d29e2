package patch

import (
	"testing"

	"github.com/nexachain/patchdb/patch/externalapi"
)

func TestSetAndGetContract(t *testing.T) {
	p := New(nil)
	addr := testAddress(1)

	p.SetContract(externalapi.NewContractState(addr, 1, []byte("data")))

	contract, ok := p.GetContract(addr)
	if !ok {
		t.Fatalf("expected a contract at %s", addr)
	}
	if string(contract.Data()) != "data" {
		t.Fatalf("expected data %q, got %q", "data", contract.Data())
	}
}

func TestSetContractOverwritesExisting(t *testing.T) {
	p := New(nil)
	addr := testAddress(1)

	p.SetContract(externalapi.NewContractState(addr, 1, []byte("first")))
	p.SetContract(externalapi.NewContractState(addr, 1, []byte("second")))

	contract, _ := p.GetContract(addr)
	if string(contract.Data()) != "second" {
		t.Fatalf("expected the later SetContract call to win, got %q", contract.Data())
	}
}

func TestGetContractsReturnsEveryAddress(t *testing.T) {
	p := New(nil)
	p.SetContract(externalapi.NewContractState(testAddress(1), 1, []byte("a")))
	p.SetContract(externalapi.NewContractState(testAddress(2), 1, []byte("b")))

	contracts := p.GetContracts()
	if len(contracts) != 2 {
		t.Fatalf("expected 2 contracts, got %d", len(contracts))
	}
}
