package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// LatestLects returns the most recent lect of every validator key that has reported on network.
func (r *Repository) LatestLects(ctx context.Context, network model.Network) ([]model.LectRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_lects", network, err, start)
	}()

	const query = `
SELECT
	validator_key,
	max(height) AS latest_height,
	argMax(txid, height),
	argMax(tx, height),
	argMax(msg_hash, height)
FROM anchoring_lects FINAL
WHERE network = ?
GROUP BY validator_key
ORDER BY validator_key ASC`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return nil, fmt.Errorf("query latest lects: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var lects []model.LectRecord
	for rows.Next() {
		var (
			key, txid, tx, msgHash string
			record                 model.LectRecord
		)
		if err = rows.Scan(&key, &record.Height, &txid, &tx, &msgHash); err != nil {
			return nil, fmt.Errorf("scan lect: %w", err)
		}
		if record, err = decodeLect(record, key, txid, tx, msgHash); err != nil {
			return nil, err
		}
		lects = append(lects, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lects: %w", err)
	}

	return lects, nil
}

func decodeLect(record model.LectRecord, key, txid, tx, msgHash string) (model.LectRecord, error) {
	var err error
	if record.ValidatorKey, err = hex.DecodeString(key); err != nil {
		return record, fmt.Errorf("decode validator key %q: %w", key, err)
	}
	id, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return record, fmt.Errorf("decode lect txid %q: %w", txid, err)
	}
	record.TxID = *id
	if record.Tx, err = hex.DecodeString(tx); err != nil {
		return record, fmt.Errorf("decode lect %s tx: %w", txid, err)
	}
	hash, err := chainhash.NewHashFromStr(msgHash)
	if err != nil {
		return record, fmt.Errorf("decode lect %s message hash: %w", txid, err)
	}
	record.MsgHash = *hash
	return record, nil
}
