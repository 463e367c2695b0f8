package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// AnchoringInfo is public information about an anchoring or funding transaction.
type AnchoringInfo struct {
	TxID    TxID     `json:"txid"`
	Payload *Payload `json:"payload"`
}

// LectInfo is a validator's lect together with the ledger message that carried it.
type LectInfo struct {
	Hash    chainhash.Hash `json:"hash"`
	Content AnchoringInfo  `json:"content"`
}

// NewAnchoringInfo projects a classified lect. A lect that is neither anchoring nor funding
// violates the protocol.
func NewAnchoringInfo(tx TxKind) (AnchoringInfo, error) {
	switch tx.Kind {
	case KindAnchoring:
		return AnchoringInfo{TxID: tx.TxID(), Payload: tx.Payload}, nil
	case KindFunding:
		return AnchoringInfo{TxID: tx.TxID()}, nil
	case KindOther:
		return AnchoringInfo{}, fmt.Errorf("%w: lect %s is neither anchoring nor funding", ErrProtocolViolation, tx.TxID())
	default:
		return AnchoringInfo{}, fmt.Errorf("%w: lect %s has unknown kind %d", ErrProtocolViolation, tx.TxID(), tx.Kind)
	}
}
