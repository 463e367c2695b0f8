package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// AnchoringConfigs returns every anchoring config stored for network ordered by activation height.
func (r *Repository) AnchoringConfigs(ctx context.Context, network model.Network) ([]model.AnchoringConfig, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("anchoring_configs", network, err, start)
	}()

	const query = `
SELECT
	actual_from,
	anchoring_keys
FROM anchoring_configs FINAL
WHERE network = ?
ORDER BY actual_from ASC`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return nil, fmt.Errorf("query anchoring configs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var configs []model.AnchoringConfig
	for rows.Next() {
		var (
			actualFrom uint64
			keys       []string
		)
		if err = rows.Scan(&actualFrom, &keys); err != nil {
			return nil, fmt.Errorf("scan anchoring config: %w", err)
		}

		cfg := model.AnchoringConfig{
			Network:       network,
			ActualFrom:    actualFrom,
			AnchoringKeys: make([][]byte, 0, len(keys)),
		}
		for _, key := range keys {
			var raw []byte
			if raw, err = hex.DecodeString(key); err != nil {
				return nil, fmt.Errorf("decode anchoring key %q of config %d: %w", key, actualFrom, err)
			}
			cfg.AnchoringKeys = append(cfg.AnchoringKeys, raw)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate anchoring configs: %w", err)
	}

	return configs, nil
}
