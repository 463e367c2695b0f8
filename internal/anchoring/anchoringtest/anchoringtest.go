// Package anchoringtest builds deterministic keys and Bitcoin transactions for tests.
package anchoringtest

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Keys returns n compressed public keys derived from fixed private scalars 1+offset..n+offset.
func Keys(n, offset int) [][]byte {
	keys := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		scalar := make([]byte, 32)
		scalar[30] = byte((i + offset + 1) >> 8)
		scalar[31] = byte(i + offset + 1)
		_, pub := btcec.PrivKeyFromBytes(scalar)
		keys = append(keys, pub.SerializeCompressed())
	}
	return keys
}

// Config returns a regtest anchoring config over n deterministic keys.
func Config(n int) model.AnchoringConfig {
	return model.AnchoringConfig{Network: model.Regtest, AnchoringKeys: Keys(n, 0)}
}

// Hash returns a hash filled with b.
func Hash(b byte) chainhash.Hash {
	var h chainhash.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

// AnchoringTx builds a transaction spending prev with the change to a script hash
// in output 0 and the payload in output 1.
func AnchoringTx(t testing.TB, prev chainhash.Hash, payload model.Payload) *wire.MsgTx {
	t.Helper()

	data, err := bitcoin.PayloadScript(payload)
	if err != nil {
		t.Fatalf("payload script: %v", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(10_000, P2SHScript(t, []byte{txscript.OP_TRUE})))
	tx.AddTxOut(wire.NewTxOut(0, data))
	return tx
}

// FundingTx builds a deposit to the anchoring address of cfg with a P2PKH change output.
func FundingTx(t testing.TB, prev chainhash.Hash, cfg model.AnchoringConfig) *wire.MsgTx {
	t.Helper()

	deposit, err := bitcoin.AnchoringScript(cfg)
	if err != nil {
		t.Fatalf("anchoring script: %v", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, 1), nil, nil))
	tx.AddTxOut(wire.NewTxOut(50_000, deposit))
	tx.AddTxOut(wire.NewTxOut(1_000, P2PKHScript(t)))
	return tx
}

// OtherTx builds a plain payment that is neither anchoring nor funding.
func OtherTx(t testing.TB, prev chainhash.Hash) *wire.MsgTx {
	t.Helper()

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, 2), nil, nil))
	tx.AddTxOut(wire.NewTxOut(7_000, P2PKHScript(t)))
	return tx
}

// P2SHScript returns a pay-to-script-hash output script for the redeem script.
func P2SHScript(t testing.TB, redeem []byte) []byte {
	t.Helper()

	addr, err := btcutil.NewAddressScriptHash(redeem, &chaincfg.RegressionNetParams)
	if err != nil {
		t.Fatalf("script hash address: %v", err)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		t.Fatalf("p2sh script: %v", err)
	}
	return script
}

// P2PKHScript returns a pay-to-pubkey-hash output script.
func P2PKHScript(t testing.TB) []byte {
	t.Helper()

	pkh := make([]byte, 20)
	pkh[19] = 1
	addr, err := btcutil.NewAddressPubKeyHash(pkh, &chaincfg.RegressionNetParams)
	if err != nil {
		t.Fatalf("pubkey hash address: %v", err)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		t.Fatalf("p2pkh script: %v", err)
	}
	return script
}

// Serialize encodes tx in wire format.
func Serialize(t testing.TB, tx *wire.MsgTx) model.RawTx {
	t.Helper()

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("serialize tx: %v", err)
	}
	return buf.Bytes()
}

// Lect builds the lect record of a validator key reporting tx at height.
func Lect(t testing.TB, key []byte, tx *wire.MsgTx, height uint64) model.LectRecord {
	t.Helper()

	return model.LectRecord{
		ValidatorKey: key,
		TxID:         tx.TxHash(),
		Tx:           Serialize(t, tx),
		MsgHash:      chainhash.HashH(append(append([]byte{}, key...), byte(height))),
		Height:       height,
	}
}
