// Package service exposes the read-only anchoring API over ledger snapshots.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/config"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/lect"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/proof"
	"go.uber.org/zap"
)

// PublicAPI answers anchoring queries. Every call reads exactly one snapshot.
type PublicAPI struct {
	classifier *bitcoin.Classifier
	lects      *lect.Resolver
	configs    *config.Resolver
	composer   *proof.Composer
	metrics    Metrics
	logger     *zap.Logger
}

// NewPublicAPI wires the anchoring resolvers.
func NewPublicAPI(metrics Metrics, logger *zap.Logger) *PublicAPI {
	classifier := bitcoin.NewClassifier()
	return &PublicAPI{
		classifier: classifier,
		lects:      lect.NewResolver(classifier),
		configs:    config.NewResolver(),
		composer:   proof.NewComposer(),
		metrics:    metrics,
		logger:     logger,
	}
}

// ActualLect returns the anchoring or funding transaction agreed by a quorum of the active
// validators, or nil when there is no agreement.
func (a *PublicAPI) ActualLect(snapshot Snapshot) (info *model.AnchoringInfo, err error) {
	started := time.Now()
	defer func() { a.observe("actual_lect", err, started) }()

	cfg := a.configs.Active(snapshot)
	tx, ok, err := a.lects.ActualLect(cfg, a.lects.Collect(cfg, snapshot))
	if err != nil {
		return nil, fmt.Errorf("resolve actual lect: %w", err)
	}
	if !ok {
		return nil, nil
	}
	agreed, err := model.NewAnchoringInfo(tx)
	if err != nil {
		return nil, fmt.Errorf("describe actual lect: %w", err)
	}
	return &agreed, nil
}

// CurrentLectOfValidator returns the latest lect of the active validator id, or nil when the
// validator has not reported one.
func (a *PublicAPI) CurrentLectOfValidator(snapshot Snapshot, id uint32) (info *model.LectInfo, err error) {
	started := time.Now()
	defer func() { a.observe("current_lect_of_validator", err, started) }()

	cfg := a.configs.Active(snapshot)
	record, ok, err := a.lects.LectOf(cfg, id, snapshot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	script, err := bitcoin.AnchoringScript(cfg)
	if err != nil {
		return nil, fmt.Errorf("anchoring address: %w", err)
	}
	content, err := model.NewAnchoringInfo(a.classifier.ClassifyFor(record.Tx, script))
	if err != nil {
		return nil, fmt.Errorf("describe lect of validator %d: %w", id, err)
	}
	return &model.LectInfo{Hash: record.MsgHash, Content: content}, nil
}

// ActualAddress returns the P2SH address of the active config.
func (a *PublicAPI) ActualAddress(snapshot Snapshot) (addr string, err error) {
	started := time.Now()
	defer func() { a.observe("actual_address", err, started) }()

	return a.configs.Address(a.configs.Active(snapshot))
}

// FollowingAddress returns the P2SH address of the pending config, or nil outside a rotation.
func (a *PublicAPI) FollowingAddress(snapshot Snapshot) (addr *string, err error) {
	started := time.Now()
	defer func() { a.observe("following_address", err, started) }()

	cfg, ok := a.configs.Following(snapshot)
	if !ok {
		return nil, nil
	}
	encoded, err := a.configs.Address(cfg)
	if err != nil {
		return nil, err
	}
	return &encoded, nil
}

// NearestLect returns the first committed anchoring transaction at or above height.
func (a *PublicAPI) NearestLect(snapshot Snapshot, height uint64) (entry *model.AnchorChainEntry, err error) {
	started := time.Now()
	defer func() { a.observe("nearest_lect", err, started) }()

	found, ok := snapshot.AnchorChain().Nearest(height)
	if !ok {
		return nil, nil
	}
	return &found, nil
}

// AnchoredBlockHeaderProof proves the anchored block hash at height against the latest
// authorized block.
func (a *PublicAPI) AnchoredBlockHeaderProof(snapshot Snapshot, height uint64) (bundle model.ProofBundle, err error) {
	started := time.Now()
	defer func() { a.observe("anchored_block_header_proof", err, started) }()

	return a.composer.ProveBlockAtHeight(snapshot, height)
}

func (a *PublicAPI) observe(operation string, err error, started time.Time) {
	a.metrics.Observe(operation, err, started)
	if errors.Is(err, model.ErrProtocolViolation) {
		a.logger.Error("anchoring protocol violation",
			zap.String("operation", operation),
			zap.String("advisory", model.ProtocolViolationAdvisory),
			zap.Error(err),
		)
	}
}
