package patch

import "github.com/nexachain/patchdb/patch/externalapi"

// SetContract installs contract into the patch, keyed by its address,
// overwriting any existing local state for that address. Contract state
// is write-only from the owning executor's point of view until merge.
func (p *Patch) SetContract(contract *externalapi.Contract) {
	p.contracts[contract.Address()] = contract
}

// GetContract returns the in-patch contract state at addr, if any.
func (p *Patch) GetContract(addr externalapi.Address) (*externalapi.Contract, bool) {
	contract, ok := p.contracts[addr]
	return contract, ok
}

// GetContracts returns every contract currently held in the patch. The
// order is unspecified.
func (p *Patch) GetContracts() []*externalapi.Contract {
	contracts := make([]*externalapi.Contract, 0, len(p.contracts))
	for _, contract := range p.contracts {
		contracts = append(contracts, contract)
	}
	return contracts
}
