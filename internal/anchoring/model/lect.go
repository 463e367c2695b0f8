package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// LectRecord is a validator's report of the latest anchoring transaction it considers correct.
type LectRecord struct {
	ValidatorKey []byte
	TxID         TxID
	Tx           RawTx
	// MsgHash is the hash of the ledger message that carried the report.
	MsgHash chainhash.Hash
	// Height is the ledger height the report was recorded at.
	Height uint64
}
