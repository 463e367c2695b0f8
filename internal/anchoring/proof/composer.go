// Package proof builds and checks proofs that tie an anchored ledger block to the latest
// authorized block.
package proof

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/ledger/merkle"
)

// ErrInvalidBundle is returned when a proof bundle does not verify.
var ErrInvalidBundle = errors.New("invalid proof bundle")

// Composer assembles proof bundles over the anchored blocks table.
type Composer struct {
	serviceID uint16
	table     uint16
}

// NewComposer constructs a Composer for the anchoring service's anchored blocks table.
func NewComposer() *Composer {
	return &Composer{serviceID: model.AnchoringServiceID, table: model.AnchoredBlocksTable}
}

// ProveBlockAtHeight proves the anchored block hash at height, or its absence, against the
// latest authorized block. Every part of the bundle is read from the same snapshot.
func (c *Composer) ProveBlockAtHeight(snapshot Snapshot, height uint64) (model.ProofBundle, error) {
	latest, ok := snapshot.LatestHeight()
	if !ok {
		return model.ProofBundle{}, fmt.Errorf("prove height %d on an empty ledger: %w", height, model.ErrHeightOutOfRange)
	}
	if height > latest {
		return model.ProofBundle{}, fmt.Errorf("prove height %d, latest %d: %w", height, latest, model.ErrHeightOutOfRange)
	}

	block, err := snapshot.BlockAndPrecommits(latest)
	if err != nil {
		return model.ProofBundle{}, fmt.Errorf("load block %d: %w", latest, err)
	}
	toHeader, err := snapshot.TableProof(c.serviceID, c.table, model.HeightKey(height))
	if err != nil {
		return model.ProofBundle{}, fmt.Errorf("prove anchored block %d: %w", height, err)
	}
	return model.ProofBundle{
		LatestAuthorizedBlock: block,
		ToTable:               snapshot.StateProof(c.serviceID, c.table),
		ToBlockHeader:         toHeader,
	}, nil
}

// VerifyBundle checks bundle for height and returns the anchored block hash. The boolean is
// false when the bundle proves that no block is anchored at height. The block must carry at
// least one precommit and at most one per validator; signatures are not checked here.
func VerifyBundle(bundle model.ProofBundle, height uint64) (chainhash.Hash, bool, error) {
	block := bundle.LatestAuthorizedBlock.Block
	if height > block.Height {
		return chainhash.Hash{}, false, fmt.Errorf("height %d above authorized block %d: %w",
			height, block.Height, model.ErrHeightOutOfRange)
	}
	precommits := bundle.LatestAuthorizedBlock.Precommits
	if len(precommits) == 0 {
		return chainhash.Hash{}, false, fmt.Errorf("%w: block %d has no precommits", ErrInvalidBundle, block.Height)
	}
	blockHash := block.Hash()
	signed := make(map[uint32]struct{}, len(precommits))
	for _, pc := range precommits {
		if pc.BlockHash != blockHash {
			return chainhash.Hash{}, false, fmt.Errorf("%w: precommit of validator %d is for block %s",
				ErrInvalidBundle, pc.Validator, pc.BlockHash)
		}
		if _, dup := signed[pc.Validator]; dup {
			return chainhash.Hash{}, false, fmt.Errorf("%w: validator %d precommitted twice", ErrInvalidBundle, pc.Validator)
		}
		signed[pc.Validator] = struct{}{}
	}

	stateKey := model.StateKey(model.AnchoringServiceID, model.AnchoredBlocksTable)
	if !bytes.Equal(bundle.ToTable.Key, stateKey) {
		return chainhash.Hash{}, false, fmt.Errorf("%w: table proof is for key %x", ErrInvalidBundle, bundle.ToTable.Key)
	}
	value, present, err := merkle.Verify(bundle.ToTable, block.StateHash)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("%w: table proof: %v", ErrInvalidBundle, err)
	}
	if !present {
		return chainhash.Hash{}, false, fmt.Errorf("%w: anchored blocks table is absent", ErrInvalidBundle)
	}
	tableCommitment, err := chainhash.NewHash(value)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("%w: table commitment: %v", ErrInvalidBundle, err)
	}

	if !bytes.Equal(bundle.ToBlockHeader.Key, model.HeightKey(height)) {
		return chainhash.Hash{}, false, fmt.Errorf("%w: header proof is for key %x", ErrInvalidBundle, bundle.ToBlockHeader.Key)
	}
	value, present, err = merkle.Verify(bundle.ToBlockHeader, *tableCommitment)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("%w: header proof: %v", ErrInvalidBundle, err)
	}
	if !present {
		return chainhash.Hash{}, false, nil
	}
	anchored, err := chainhash.NewHash(value)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf("%w: anchored block hash: %v", ErrInvalidBundle, err)
	}
	return *anchored, true, nil
}
