package fixture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/ledger/memory"
	"github.com/goodnatureofminers/btcanchoring-backend/pkg/safe"
)

// Ledger is a replayed dump.
type Ledger struct {
	Network  model.Network
	Snapshot *memory.Snapshot
	// Anchors maps anchor names to their serialized transactions.
	Anchors map[string]model.RawTx
}

type replay struct {
	dump       Dump
	builder    *memory.Builder
	classifier *bitcoin.Classifier
	actual     model.AnchoringConfig
	following  *model.AnchoringConfig
	hashes     []chainhash.Hash
	anchors    map[string]model.RawTx
}

// Build replays dump into a fresh in-memory ledger.
func Build(dump Dump) (*Ledger, error) {
	classifier := bitcoin.NewClassifier()
	actual := dump.Config.config(dump.Network)
	r := &replay{
		dump:       dump,
		builder:    memory.NewBuilder(classifier, actual),
		classifier: classifier,
		actual:     actual,
		anchors:    make(map[string]model.RawTx),
	}
	for i, block := range dump.Blocks {
		height, err := safe.Uint64(i)
		if err != nil {
			return nil, err
		}
		if err := r.apply(height, block); err != nil {
			return nil, fmt.Errorf("block %d: %w", height, err)
		}
	}
	return &Ledger{Network: dump.Network, Snapshot: r.builder.Snapshot(), Anchors: r.anchors}, nil
}

func (r *replay) apply(height uint64, block BlockDump) error {
	if block.Following != nil {
		cfg := block.Following.config(r.dump.Network)
		r.following = &cfg
		r.builder.SetFollowing(&cfg)
	}
	if block.Rotate {
		if err := r.builder.Rotate(); err != nil {
			return err
		}
		r.actual, r.following = *r.following, nil
	}

	for i, entry := range block.Entries {
		if entry.Service == model.AnchoringServiceID && entry.Table == model.AnchoredBlocksTable {
			return fmt.Errorf("entry %d: anchored blocks are written by anchors only", i)
		}
		r.builder.SetServiceEntry(entry.Service, entry.Table, entry.Key, entry.Value)
	}

	for i, anchor := range block.Anchors {
		raw, err := r.anchorTx(anchor)
		if err != nil {
			return fmt.Errorf("anchor %d: %w", i, err)
		}
		if err := r.builder.AppendAnchor(height, raw); err != nil {
			return fmt.Errorf("anchor %d: %w", i, err)
		}
		if anchor.Name != "" {
			r.anchors[anchor.Name] = raw
		}
	}

	for i, lect := range block.Lects {
		rec, err := r.lect(height, lect)
		if err != nil {
			return fmt.Errorf("lect %d: %w", i, err)
		}
		if err := r.builder.RecordLect(rec); err != nil {
			return fmt.Errorf("lect %d: %w", i, err)
		}
	}

	txHash := chainhash.DoubleHashH(heightBytes(height))
	if len(block.TxHash) > 0 {
		h, err := chainhash.NewHash(block.TxHash)
		if err != nil {
			return fmt.Errorf("tx hash: %w", err)
		}
		txHash = *h
	}
	signatures := make(map[uint32][]byte, len(block.Precommits))
	for id, sig := range block.Precommits {
		signatures[id] = sig
	}
	proof := r.builder.Commit(txHash, signatures)
	r.hashes = append(r.hashes, proof.Block.Hash())
	return nil
}

func (r *replay) lect(height uint64, lect LectDump) (model.LectRecord, error) {
	key, ok := r.actual.ValidatorKey(lect.Validator)
	if !ok {
		return model.LectRecord{}, fmt.Errorf("validator %d: %w", lect.Validator, model.ErrUnknownValidatorID)
	}
	raw := model.RawTx(lect.Tx)
	if lect.Anchor != "" {
		named, ok := r.anchors[lect.Anchor]
		if !ok {
			return model.LectRecord{}, fmt.Errorf("unknown anchor %q", lect.Anchor)
		}
		raw = named
	}
	if len(raw) == 0 {
		return model.LectRecord{}, fmt.Errorf("validator %d reported no transaction", lect.Validator)
	}

	msg := append(append(bytes.Clone(key), raw...), heightBytes(height)...)
	return model.LectRecord{
		ValidatorKey: key,
		TxID:         r.classifier.Classify(raw).TxID(),
		Tx:           raw,
		MsgHash:      chainhash.HashH(msg),
		Height:       height,
	}, nil
}

// anchorTx returns the raw anchor, building it when the dump only names the committed height.
func (r *replay) anchorTx(anchor AnchorDump) (model.RawTx, error) {
	if len(anchor.Tx) > 0 {
		return model.RawTx(anchor.Tx), nil
	}
	if anchor.PayloadHeight == nil {
		return nil, errors.New("anchor needs tx or payload_height")
	}
	payloadHeight := *anchor.PayloadHeight
	if payloadHeight >= uint64(len(r.hashes)) {
		return nil, fmt.Errorf("payload height %d: %w", payloadHeight, model.ErrHeightOutOfRange)
	}

	prev, err := chainhash.NewHashFromStr(anchor.Spends)
	if err != nil {
		return nil, fmt.Errorf("spends: %w", err)
	}
	lock, err := bitcoin.AnchoringScript(r.actual)
	if err != nil {
		return nil, fmt.Errorf("anchoring output: %w", err)
	}
	data, err := bitcoin.PayloadScript(model.Payload{Height: payloadHeight, BlockHash: r.hashes[payloadHeight]})
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prev, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(anchor.Value, lock))
	tx.AddTxOut(wire.NewTxOut(0, data))

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize anchor: %w", err)
	}
	return buf.Bytes(), nil
}

func heightBytes(height uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], height)
	return b[:]
}
