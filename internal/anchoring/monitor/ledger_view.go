package monitor

import (
	"encoding/hex"
	"sort"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// ledgerView answers config and lect lookups from rows loaded out of storage.
// Its tip is the highest ledger height seen in any loaded row, which trails the real ledger
// tip by at most the blocks committed since the last stored lect.
type ledgerView struct {
	tip       uint64
	actual    model.AnchoringConfig
	following *model.AnchoringConfig
	lects     map[string]model.LectRecord
}

func newLedgerView(configs []model.AnchoringConfig, lects []model.LectRecord, chainTip uint64) *ledgerView {
	v := &ledgerView{
		tip:   chainTip,
		lects: make(map[string]model.LectRecord, len(lects)),
	}
	for _, record := range lects {
		key := hex.EncodeToString(record.ValidatorKey)
		if prev, ok := v.lects[key]; !ok || record.Height >= prev.Height {
			v.lects[key] = record
		}
		if record.Height > v.tip {
			v.tip = record.Height
		}
	}

	sorted := append([]model.AnchoringConfig(nil), configs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ActualFrom < sorted[j].ActualFrom })
	for i, cfg := range sorted {
		if cfg.ActualFrom > v.tip && i > 0 {
			next := cfg
			v.following = &next
			break
		}
		v.actual = cfg
	}
	return v
}

func (v *ledgerView) LatestHeight() (uint64, bool) {
	return v.tip, true
}

func (v *ledgerView) ActualConfig() model.AnchoringConfig {
	return v.actual
}

func (v *ledgerView) FollowingConfig() (model.AnchoringConfig, bool) {
	if v.following == nil {
		return model.AnchoringConfig{}, false
	}
	return *v.following, true
}

func (v *ledgerView) LatestLect(validatorKey []byte) (model.LectRecord, bool) {
	record, ok := v.lects[hex.EncodeToString(validatorKey)]
	return record, ok
}
