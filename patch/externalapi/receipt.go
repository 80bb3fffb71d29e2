package externalapi

// TxReceipt is a transaction's execution receipt. It is opaque to the
// patch package beyond structural equality and cloning.
type TxReceipt interface {
	Equal(other TxReceipt) bool
	Clone() TxReceipt
}
