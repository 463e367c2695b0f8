package model

import "time"

// AnchorRecord is a stored anchoring transaction committed at a ledger height.
type AnchorRecord struct {
	Height uint64
	Tx     RawTx
}

// LectObservation is one lect monitor sample.
type LectObservation struct {
	Network    Network
	ObservedAt time.Time
	// Agreed is false when no transaction had a quorum; the tx fields are then empty.
	Agreed         bool
	TxID           string
	Kind           Kind
	AnchoredHeight uint64
	Confirmations  uint64
	Reporting      uint32
	ChainTip       uint64
}
