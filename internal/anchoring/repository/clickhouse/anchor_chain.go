package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// AnchorChain returns the committed anchoring transactions at or above fromHeight in height order.
func (r *Repository) AnchorChain(ctx context.Context, network model.Network, fromHeight uint64) ([]model.AnchorRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("anchor_chain", network, err, start)
	}()

	const query = `
SELECT
	height,
	tx
FROM anchoring_tx_chain FINAL
WHERE network = ? AND height >= ?
ORDER BY height ASC`

	rows, err := r.conn.Query(ctx, query, string(network), fromHeight)
	if err != nil {
		return nil, fmt.Errorf("query anchor chain: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var records []model.AnchorRecord
	for rows.Next() {
		var (
			record model.AnchorRecord
			tx     string
		)
		if err = rows.Scan(&record.Height, &tx); err != nil {
			return nil, fmt.Errorf("scan anchor: %w", err)
		}
		if record.Tx, err = hex.DecodeString(tx); err != nil {
			return nil, fmt.Errorf("decode anchor at height %d: %w", record.Height, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate anchor chain: %w", err)
	}

	return records, nil
}
