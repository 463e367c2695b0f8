// Package lect resolves the latest correct anchoring transaction agreed by the validator set.
package lect

import (
	"bytes"
	"fmt"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// Resolver computes the lect agreed by a Byzantine quorum of validators.
type Resolver struct {
	classifier Classifier
}

// NewResolver builds a Resolver over the given transaction classifier.
func NewResolver(classifier Classifier) *Resolver {
	return &Resolver{classifier: classifier}
}

// Collect returns the most recent lect of every validator of cfg that has reported one.
func (r *Resolver) Collect(cfg model.AnchoringConfig, lects LectLog) map[uint32]model.LectRecord {
	records := make(map[uint32]model.LectRecord, len(cfg.AnchoringKeys))
	for id, key := range cfg.AnchoringKeys {
		if record, ok := lects.LatestLect(key); ok {
			records[uint32(id)] = record
		}
	}
	return records
}

// LectOf returns the most recent lect of validator id. The boolean is false when the validator
// has not reported yet.
func (r *Resolver) LectOf(cfg model.AnchoringConfig, id uint32, lects LectLog) (model.LectRecord, bool, error) {
	key, ok := cfg.ValidatorKey(id)
	if !ok {
		return model.LectRecord{}, false, fmt.Errorf("validator %d of %d: %w", id, len(cfg.AnchoringKeys), model.ErrUnknownValidatorID)
	}
	record, ok := lects.LatestLect(key)
	return record, ok, nil
}

// ActualLect returns the transaction reported by at least cfg.Threshold() validators.
// Records of keys outside cfg or recorded before cfg became active are not counted.
// The boolean is false when no transaction has a quorum; minorities are never merged.
// A funding transaction only counts when it deposits to the anchoring address of cfg.
func (r *Resolver) ActualLect(cfg model.AnchoringConfig, records map[uint32]model.LectRecord) (model.TxKind, bool, error) {
	threshold := cfg.Threshold()
	if threshold == 0 {
		return model.TxKind{}, false, nil
	}
	if err := cfg.Validate(); err != nil {
		return model.TxKind{}, false, err
	}

	voters := make(map[model.TxID]map[string]struct{}, len(records))
	sample := make(map[model.TxID]uint32, len(records))
	for id, record := range records {
		key, ok := cfg.ValidatorKey(id)
		if !ok || !bytes.Equal(key, record.ValidatorKey) || record.Height < cfg.ActualFrom {
			continue
		}
		if voters[record.TxID] == nil {
			voters[record.TxID] = make(map[string]struct{})
		}
		voters[record.TxID][string(key)] = struct{}{}
		if prev, seen := sample[record.TxID]; !seen || id < prev {
			sample[record.TxID] = id
		}
	}

	for txid, keys := range voters {
		if len(keys) < threshold {
			continue
		}
		return r.classifyAgreed(cfg, txid, records[sample[txid]])
	}
	return model.TxKind{}, false, nil
}

func (r *Resolver) classifyAgreed(cfg model.AnchoringConfig, txid model.TxID, record model.LectRecord) (model.TxKind, bool, error) {
	script, err := bitcoin.AnchoringScript(cfg)
	if err != nil {
		return model.TxKind{}, false, fmt.Errorf("anchoring address: %w", err)
	}
	tx := r.classifier.ClassifyFor(record.Tx, script)
	switch tx.Kind {
	case model.KindAnchoring, model.KindFunding:
		if tx.TxID() != txid {
			return model.TxKind{}, false, fmt.Errorf("%w: agreed lect %s carries transaction %s", model.ErrProtocolViolation, txid, tx.TxID())
		}
		return tx, true, nil
	case model.KindOther:
		return model.TxKind{}, false, fmt.Errorf("%w: agreed lect %s is neither anchoring nor funding of %x", model.ErrProtocolViolation, txid, script)
	default:
		return model.TxKind{}, false, fmt.Errorf("%w: agreed lect %s has unknown kind %d", model.ErrProtocolViolation, txid, tx.Kind)
	}
}
