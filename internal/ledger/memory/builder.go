// Package memory is an in-memory ledger that serves immutable anchoring snapshots.
package memory

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/chainindex"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/ledger/merkle"
)

var (
	// ErrStaleLect is returned when a lect is recorded below the validator's previous report.
	ErrStaleLect = errors.New("lect is older than the latest report")
	// ErrBlockHashMismatch is returned when an anchor commits to a hash the ledger does not have.
	ErrBlockHashMismatch = errors.New("anchored block hash does not match the ledger")
)

// Classifier decodes raw bitcoin transactions.
type Classifier interface {
	Classify(raw model.RawTx) model.TxKind
}

// Builder accumulates ledger writes and publishes a Snapshot on every Commit.
// A Builder is not safe for concurrent use; snapshots are.
type Builder struct {
	classifier Classifier

	actual    model.AnchoringConfig
	following *model.AnchoringConfig

	blocks   []model.BlockProof
	tables   map[string]map[string][]byte
	anchored map[uint64]chainhash.Hash
	lects    map[string][]model.LectRecord
	chain    *chainindex.Index

	snapshot *Snapshot
}

// NewBuilder creates an empty ledger governed by the actual anchoring config.
func NewBuilder(classifier Classifier, actual model.AnchoringConfig) *Builder {
	b := &Builder{
		classifier: classifier,
		actual:     actual,
		tables:     make(map[string]map[string][]byte),
		anchored:   make(map[uint64]chainhash.Hash),
		lects:      make(map[string][]model.LectRecord),
		chain:      &chainindex.Index{},
	}
	b.snapshot = b.freeze(b.state())
	return b
}

// SetFollowing schedules the next anchoring config. Passing nil cancels a pending rotation.
func (b *Builder) SetFollowing(cfg *model.AnchoringConfig) {
	if cfg == nil {
		b.following = nil
		return
	}
	following := copyConfig(*cfg)
	b.following = &following
}

// Rotate makes the following config actual.
func (b *Builder) Rotate() error {
	if b.following == nil {
		return errors.New("no following anchoring config")
	}
	b.actual = *b.following
	b.following = nil
	return nil
}

// SetServiceEntry writes a key into a service table.
func (b *Builder) SetServiceEntry(serviceID, table uint16, key, value []byte) {
	stateKey := string(model.StateKey(serviceID, table))
	entries, ok := b.tables[stateKey]
	if !ok {
		entries = make(map[string][]byte)
		b.tables[stateKey] = entries
	}
	entries[string(key)] = bytes.Clone(value)
}

// RecordLect appends a validator report to its lect log.
func (b *Builder) RecordLect(rec model.LectRecord) error {
	logKey := hex.EncodeToString(rec.ValidatorKey)
	log := b.lects[logKey]
	if n := len(log); n > 0 && rec.Height < log[n-1].Height {
		return fmt.Errorf("record lect at height %d, previous at %d: %w", rec.Height, log[n-1].Height, ErrStaleLect)
	}
	rec.ValidatorKey = bytes.Clone(rec.ValidatorKey)
	rec.Tx = bytes.Clone(rec.Tx)
	b.lects[logKey] = append(log, rec)
	return nil
}

// AppendAnchor commits an anchoring transaction at the given ledger height and records the
// block it anchors in the anchored blocks table.
func (b *Builder) AppendAnchor(height uint64, raw model.RawTx) error {
	tx := b.classifier.Classify(raw)
	if tx.Kind == model.KindAnchoring && tx.Payload != nil {
		if tx.Payload.Height >= uint64(len(b.blocks)) {
			return fmt.Errorf("anchor %s commits to uncommitted height %d: %w",
				tx.TxID(), tx.Payload.Height, model.ErrHeightOutOfRange)
		}
		if have := b.blocks[tx.Payload.Height].Block.Hash(); have != tx.Payload.BlockHash {
			return fmt.Errorf("anchor %s commits to block %s at height %d, ledger has %s: %w",
				tx.TxID(), tx.Payload.BlockHash, tx.Payload.Height, have, ErrBlockHashMismatch)
		}
	}
	if err := b.chain.Append(model.AnchorChainEntry{Height: height, Tx: tx}); err != nil {
		return fmt.Errorf("append anchor %s: %w", tx.TxID(), err)
	}
	b.anchored[tx.Payload.Height] = tx.Payload.BlockHash
	return nil
}

// Commit appends a block over the current state, signed by the given precommit signatures
// keyed by validator id, and publishes the resulting snapshot.
func (b *Builder) Commit(txHash chainhash.Hash, signatures map[uint32][]byte) model.BlockProof {
	state, tables := b.state()
	header := model.BlockHeader{
		Height:    uint64(len(b.blocks)),
		TxHash:    txHash,
		StateHash: state.Commitment(),
	}
	if n := len(b.blocks); n > 0 {
		header.PrevHash = b.blocks[n-1].Block.Hash()
	}

	blockHash := header.Hash()
	validators := make([]uint32, 0, len(signatures))
	for id := range signatures {
		validators = append(validators, id)
	}
	sort.Slice(validators, func(i, j int) bool { return validators[i] < validators[j] })

	proof := model.BlockProof{Block: header, Precommits: make([]model.Precommit, 0, len(validators))}
	for _, id := range validators {
		proof.Precommits = append(proof.Precommits, model.Precommit{
			Validator: id,
			BlockHash: blockHash,
			Signature: bytes.Clone(signatures[id]),
		})
	}
	b.blocks = append(b.blocks, proof)
	b.snapshot = b.freeze(state, tables)
	return proof
}

// Snapshot returns the ledger as of the latest Commit.
func (b *Builder) Snapshot() *Snapshot {
	return b.snapshot
}

func (b *Builder) state() (*merkle.Map, map[string]*merkle.Map) {
	anchored := make(map[string][]byte, len(b.anchored))
	for height, hash := range b.anchored {
		anchored[string(model.HeightKey(height))] = bytes.Clone(hash[:])
	}
	anchoredKey := string(model.StateKey(model.AnchoringServiceID, model.AnchoredBlocksTable))

	tables := make(map[string]*merkle.Map, len(b.tables)+1)
	tables[anchoredKey] = merkle.NewMap(anchored)
	for stateKey, entries := range b.tables {
		if stateKey == anchoredKey {
			continue
		}
		tables[stateKey] = merkle.NewMap(entries)
	}

	commitments := make(map[string][]byte, len(tables))
	for stateKey, table := range tables {
		commitment := table.Commitment()
		commitments[stateKey] = commitment[:]
	}
	return merkle.NewMap(commitments), tables
}

func (b *Builder) freeze(state *merkle.Map, tables map[string]*merkle.Map) *Snapshot {
	snap := &Snapshot{
		actual: copyConfig(b.actual),
		blocks: append([]model.BlockProof(nil), b.blocks...),
		state:  state,
		tables: tables,
		lects:  make(map[string]model.LectRecord, len(b.lects)),
		chain:  b.chain.Clone(),
	}
	if b.following != nil {
		following := copyConfig(*b.following)
		snap.following = &following
	}
	for key, log := range b.lects {
		snap.lects[key] = log[len(log)-1]
	}
	return snap
}

func copyConfig(cfg model.AnchoringConfig) model.AnchoringConfig {
	keys := make([][]byte, len(cfg.AnchoringKeys))
	for i, key := range cfg.AnchoringKeys {
		keys[i] = bytes.Clone(key)
	}
	cfg.AnchoringKeys = keys
	return cfg
}
