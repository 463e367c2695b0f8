// Package model defines domain models for Bitcoin anchoring of the ledger.
package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxID identifies a Bitcoin transaction.
type TxID = chainhash.Hash

// RawTx is a serialized Bitcoin transaction as reported by validators.
type RawTx []byte

// Network names the Bitcoin network the anchoring address lives on.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// Payload is the ledger commitment carried in the data output of an anchoring transaction.
type Payload struct {
	Height    uint64         `json:"block_height"`
	BlockHash chainhash.Hash `json:"block_hash"`
	// PrevTxChain is set on recovery anchors that restart a broken chain of anchoring transactions.
	PrevTxChain *chainhash.Hash `json:"prev_tx_chain,omitempty"`
}

// Kind tags the role of a Bitcoin transaction in the anchoring protocol.
type Kind uint8

const (
	// KindOther marks a transaction the anchoring protocol does not recognize.
	KindOther Kind = iota
	// KindAnchoring marks a transaction that commits to a ledger block.
	KindAnchoring
	// KindFunding marks a deposit to the anchoring address without a ledger commitment.
	KindFunding
)

func (k Kind) String() string {
	switch k {
	case KindAnchoring:
		return "anchoring"
	case KindFunding:
		return "funding"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// TxKind is a classified Bitcoin transaction. Tx is nil when the raw bytes did not decode,
// Payload is set only for KindAnchoring.
type TxKind struct {
	Kind    Kind
	Tx      *wire.MsgTx
	Payload *Payload
}

// TxID returns the transaction hash, or the zero hash when the transaction did not decode.
func (k TxKind) TxID() TxID {
	if k.Tx == nil {
		return TxID{}
	}
	return k.Tx.TxHash()
}
