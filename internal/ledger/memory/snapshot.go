package memory

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/chainindex"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/ledger/merkle"
)

// ErrUnknownTable is returned for a service table that has never been written.
var ErrUnknownTable = errors.New("unknown service table")

// Snapshot is an immutable view of the ledger at one committed height.
type Snapshot struct {
	actual    model.AnchoringConfig
	following *model.AnchoringConfig

	blocks []model.BlockProof
	state  *merkle.Map
	tables map[string]*merkle.Map
	lects  map[string]model.LectRecord
	chain  *chainindex.Index
}

// LatestHeight returns the height of the latest committed block.
func (s *Snapshot) LatestHeight() (uint64, bool) {
	if len(s.blocks) == 0 {
		return 0, false
	}
	return uint64(len(s.blocks) - 1), true
}

// BlockAndPrecommits returns the block at height together with its precommits.
func (s *Snapshot) BlockAndPrecommits(height uint64) (model.BlockProof, error) {
	if height >= uint64(len(s.blocks)) {
		return model.BlockProof{}, fmt.Errorf("block %d of %d: %w", height, len(s.blocks), model.ErrHeightOutOfRange)
	}
	return s.blocks[height], nil
}

// StateProof proves the commitment of a service table against the latest block state hash.
func (s *Snapshot) StateProof(serviceID, table uint16) model.MapProof {
	return s.state.Prove(model.StateKey(serviceID, table))
}

// TableProof proves presence or absence of key in a service table.
func (s *Snapshot) TableProof(serviceID, table uint16, key []byte) (model.MapProof, error) {
	entries, ok := s.tables[string(model.StateKey(serviceID, table))]
	if !ok {
		return model.MapProof{}, fmt.Errorf("table %d of service %d: %w", table, serviceID, ErrUnknownTable)
	}
	return entries.Prove(key), nil
}

// ActualConfig returns the stored actual anchoring config.
func (s *Snapshot) ActualConfig() model.AnchoringConfig {
	return s.actual
}

// FollowingConfig returns the scheduled anchoring config, if any.
func (s *Snapshot) FollowingConfig() (model.AnchoringConfig, bool) {
	if s.following == nil {
		return model.AnchoringConfig{}, false
	}
	return *s.following, true
}

// LatestLect returns the most recent lect reported under validatorKey.
func (s *Snapshot) LatestLect(validatorKey []byte) (model.LectRecord, bool) {
	rec, ok := s.lects[hex.EncodeToString(validatorKey)]
	return rec, ok
}

// AnchorChain returns the committed chain of anchoring transactions.
func (s *Snapshot) AnchorChain() chainindex.View {
	return s.chain.View()
}
