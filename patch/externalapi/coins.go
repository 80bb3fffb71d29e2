package externalapi

import (
	"bytes"

	"github.com/btcsuite/btcutil"
)

// Coins is the value carried by a single UTXO entry: the output's spendable
// amount plus its lock script. It is opaque to the patch package — patch
// only clones and compares a Coins value, and serializes it into the
// coin-store commitment digest.
type Coins struct {
	Amount     btcutil.Amount
	LockScript []byte
}

// NewCoins constructs a Coins value from an amount and a lock script.
func NewCoins(amount btcutil.Amount, lockScript []byte) Coins {
	return Coins{Amount: amount, LockScript: lockScript}
}

// Equal reports whether c and other carry the same amount and lock script.
func (c Coins) Equal(other Coins) bool {
	return c.Amount == other.Amount && bytes.Equal(c.LockScript, other.LockScript)
}

// Clone returns a deep copy of c.
func (c Coins) Clone() Coins {
	lockScript := make([]byte, len(c.LockScript))
	copy(lockScript, c.LockScript)
	return Coins{Amount: c.Amount, LockScript: lockScript}
}
