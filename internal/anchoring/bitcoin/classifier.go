package bitcoin

import (
	"bytes"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// payloadOutputIndex is the output of an anchoring transaction that carries the payload.
// Output 0 returns the change to the anchoring address.
const payloadOutputIndex = 1

// Classifier assigns anchoring roles to Bitcoin transactions.
type Classifier struct{}

// NewClassifier returns a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify decodes and classifies a serialized transaction. Bytes that do not decode to
// exactly one transaction are classified as model.KindOther. Without an anchoring address
// any single script hash deposit is taken as funding; ClassifyFor narrows that down.
func (c *Classifier) Classify(raw model.RawTx) model.TxKind {
	reader := bytes.NewReader(raw)
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(reader); err != nil || reader.Len() != 0 {
		return model.TxKind{Kind: model.KindOther}
	}
	return c.ClassifyTx(tx)
}

// ClassifyFor classifies raw for the anchoring address whose output script is anchoringScript.
// A funding transaction must deposit to that address, otherwise it is model.KindOther.
func (c *Classifier) ClassifyFor(raw model.RawTx, anchoringScript []byte) model.TxKind {
	tx := c.Classify(raw)
	if tx.Kind == model.KindFunding && !depositsTo(tx.Tx, anchoringScript) {
		return model.TxKind{Kind: model.KindOther, Tx: tx.Tx}
	}
	return tx
}

// ClassifyTx classifies a decoded transaction.
func (c *Classifier) ClassifyTx(tx *wire.MsgTx) model.TxKind {
	if tx == nil {
		return model.TxKind{Kind: model.KindOther}
	}
	if len(tx.TxIn) > 0 && len(tx.TxOut) > payloadOutputIndex {
		if payload, err := payloadFromScript(tx.TxOut[payloadOutputIndex].PkScript); err == nil {
			return model.TxKind{Kind: model.KindAnchoring, Tx: tx, Payload: &payload}
		}
	}
	if isFunding(tx) {
		return model.TxKind{Kind: model.KindFunding, Tx: tx}
	}
	return model.TxKind{Kind: model.KindOther, Tx: tx}
}

// isFunding reports whether exactly one output pays to a script hash.
func isFunding(tx *wire.MsgTx) bool {
	deposits := 0
	for _, out := range tx.TxOut {
		if txscript.IsPayToScriptHash(out.PkScript) {
			deposits++
		}
	}
	return deposits == 1
}

func depositsTo(tx *wire.MsgTx, script []byte) bool {
	if !txscript.IsPayToScriptHash(script) {
		return false
	}
	for _, out := range tx.TxOut {
		if bytes.Equal(out.PkScript, script) {
			return true
		}
	}
	return false
}
