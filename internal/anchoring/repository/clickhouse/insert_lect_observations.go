package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
)

// InsertLectObservations stores lect monitor samples.
func (r *Repository) InsertLectObservations(ctx context.Context, observations []model.LectObservation) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_lect_observations", firstNetwork(observations), err, start)
	}()

	if len(observations) == 0 {
		return nil
	}

	const query = `
INSERT INTO anchoring_lect_observations (
	network,
	observed_at,
	agreed,
	txid,
	kind,
	anchored_height,
	confirmations,
	reporting,
	chain_tip
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare lect observations batch: %w", err)
	}

	for _, obs := range observations {
		if err = batch.Append(
			string(obs.Network),
			obs.ObservedAt,
			obs.Agreed,
			obs.TxID,
			obs.Kind.String(),
			obs.AnchoredHeight,
			obs.Confirmations,
			obs.Reporting,
			obs.ChainTip,
		); err != nil {
			if abortErr := batch.Abort(); abortErr != nil {
				err = fmt.Errorf("%w (abort: %v)", err, abortErr)
			}
			return fmt.Errorf("append lect observation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert lect observations: %w", err)
	}
	return nil
}

func firstNetwork(observations []model.LectObservation) model.Network {
	if len(observations) == 0 {
		return ""
	}
	return observations[0].Network
}
