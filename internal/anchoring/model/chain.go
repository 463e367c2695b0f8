package model

// AnchorChainEntry is an anchoring transaction committed by the ledger at Height.
type AnchorChainEntry struct {
	Height uint64
	Tx     TxKind
}
