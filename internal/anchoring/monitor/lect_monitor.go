// Package monitor watches the lect agreed by the anchoring validators.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/chainindex"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/config"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/lect"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/clock"
	"github.com/goodnatureofminers/btcanchoring-backend/pkg/batcher"
	"github.com/goodnatureofminers/btcanchoring-backend/pkg/safe"
	"github.com/goodnatureofminers/btcanchoring-backend/pkg/workerpool"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the gRPC health service name the monitor reports under.
const HealthService = "btcanchoring.LectMonitor"

const (
	loadWorkers     = 3
	classifyWorkers = 4
	maxBackoff      = 5 * time.Minute

	observationBatchSize     = 100
	observationFlushInterval = 30 * time.Second
	observationFlushRPS      = 5
)

// LectMonitor periodically resolves the actual lect from stored validator reports,
// checks its Bitcoin confirmations and records the result.
type LectMonitor struct {
	repo     Repository
	rpc      RPCClient
	metrics  Metrics
	health   Health
	clock    Clock
	logger   *zap.Logger
	network  model.Network
	interval time.Duration

	classifier *bitcoin.Classifier
	lects      *lect.Resolver
	configs    *config.Resolver
	chain      *chainindex.Index

	observations *batcher.Batcher[model.LectObservation]
}

// NewLectMonitor builds a monitor for one Bitcoin network polling every interval.
func NewLectMonitor(
	repo Repository,
	rpc RPCClient,
	metrics Metrics,
	health Health,
	clk Clock,
	network model.Network,
	interval time.Duration,
	logger *zap.Logger,
) *LectMonitor {
	classifier := bitcoin.NewClassifier()
	m := &LectMonitor{
		repo:       repo,
		rpc:        rpc,
		metrics:    metrics,
		health:     health,
		clock:      clk,
		logger:     logger,
		network:    network,
		interval:   interval,
		classifier: classifier,
		lects:      lect.NewResolver(classifier),
		configs:    config.NewResolver(),
		chain:      &chainindex.Index{},
	}
	m.observations = batcher.New[model.LectObservation](
		logger.Named("observations"),
		repo.InsertLectObservations,
		batcher.Options{
			Size:     observationBatchSize,
			Interval: observationFlushInterval,
			RPS:      observationFlushRPS,
		},
	)
	m.observations.OnError(func(batch []model.LectObservation, _ error) {
		m.logger.Warn("lect observations dropped",
			zap.Int("count", len(batch)),
			zap.Time("from", batch[0].ObservedAt),
			zap.Time("to", batch[len(batch)-1].ObservedAt),
		)
	})
	return m
}

// Run checks the lect until ctx is canceled. Failed checks are retried with backoff,
// a protocol violation marks the health service as not serving until it clears.
func (m *LectMonitor) Run(ctx context.Context) error {
	m.observations.Start(ctx)
	defer m.observations.Stop()

	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		obs, err := m.Check(ctx)
		switch {
		case err == nil:
			failures = 0
			m.health.SetServingStatus(HealthService, healthpb.HealthCheckResponse_SERVING)
		case errors.Is(err, model.ErrProtocolViolation):
			failures = 0
			m.health.SetServingStatus(HealthService, healthpb.HealthCheckResponse_NOT_SERVING)
			m.logger.Error("anchoring protocol violation",
				zap.String("advisory", model.ProtocolViolationAdvisory),
				zap.Error(err),
			)
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			failures++
			m.logger.Warn("lect check failed", zap.Int("failures", failures), zap.Error(err))
		}

		if failures == 0 {
			if err := m.observations.Add(ctx, obs); err != nil {
				return err
			}
		}

		delay := m.interval
		if failures > 0 {
			delay = clock.Backoff(failures, m.interval, maxBackoff)
		}
		if err := m.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
}

// Check runs a single monitor iteration and returns the observation it produced.
// The observation is meaningful when err is nil or a protocol violation.
func (m *LectMonitor) Check(ctx context.Context) (obs model.LectObservation, err error) {
	started := m.clock.Now()
	defer func() {
		m.metrics.ObserveIteration(err, started)
	}()

	var (
		configs []model.AnchoringConfig
		records []model.LectRecord
		anchors []model.AnchorRecord
	)
	from := uint64(0)
	if last, ok := m.chain.Last(); ok {
		from = last.Height + 1
	}
	err = workerpool.Run(ctx, loadWorkers,
		func(ctx context.Context) error {
			res, loadErr := m.repo.AnchoringConfigs(ctx, m.network)
			if loadErr != nil {
				return fmt.Errorf("load anchoring configs: %w", loadErr)
			}
			configs = res
			return nil
		},
		func(ctx context.Context) error {
			res, loadErr := m.repo.LatestLects(ctx, m.network)
			if loadErr != nil {
				return fmt.Errorf("load lects: %w", loadErr)
			}
			records = res
			return nil
		},
		func(ctx context.Context) error {
			res, loadErr := m.repo.AnchorChain(ctx, m.network, from)
			if loadErr != nil {
				return fmt.Errorf("load anchor chain from %d: %w", from, loadErr)
			}
			anchors = res
			return nil
		},
	)
	if err != nil {
		return obs, err
	}
	if len(configs) == 0 {
		return obs, fmt.Errorf("no anchoring config stored for %s", m.network)
	}
	if err = m.extendChain(ctx, anchors); err != nil {
		return obs, err
	}

	chainTip := uint64(0)
	if last, ok := m.chain.Last(); ok {
		chainTip = last.Height
	}
	view := newLedgerView(configs, records, chainTip)
	cfg := m.configs.Active(view)
	reported := m.lects.Collect(cfg, view)
	m.metrics.SetReporting(len(reported))

	reporting, err := safe.Uint32(len(reported))
	if err != nil {
		return obs, fmt.Errorf("reporting validators: %w", err)
	}
	obs = model.LectObservation{
		Network:    m.network,
		ObservedAt: started,
		Reporting:  reporting,
		ChainTip:   chainTip,
	}

	tx, ok, err := m.lects.ActualLect(cfg, reported)
	if err != nil || !ok {
		m.metrics.SetNoAgreement()
		if err == nil {
			m.logger.Info("no lect has a quorum",
				zap.Int("reporting", len(reported)),
				zap.Int("threshold", cfg.Threshold()),
			)
		}
		return obs, err
	}

	txid := tx.TxID()
	res, err := m.rpc.GetRawTransactionVerbose(&txid)
	if err != nil {
		return obs, fmt.Errorf("get lect %s: %w", txid, err)
	}

	obs.Agreed = true
	obs.TxID = txid.String()
	obs.Kind = tx.Kind
	obs.Confirmations = res.Confirmations
	if tx.Payload != nil {
		obs.AnchoredHeight = tx.Payload.Height
	}
	m.metrics.SetAgreed(tx, res.Confirmations)
	m.logger.Debug("lect checked",
		zap.String("txid", obs.TxID),
		zap.Stringer("kind", tx.Kind),
		zap.Uint64("confirmations", obs.Confirmations),
	)
	return obs, nil
}

func (m *LectMonitor) extendChain(ctx context.Context, anchors []model.AnchorRecord) error {
	entries := make([]model.AnchorChainEntry, len(anchors))
	positions := make([]int, len(anchors))
	for i := range positions {
		positions[i] = i
	}
	err := workerpool.Each(ctx, classifyWorkers, positions, func(_ context.Context, i int) error {
		entries[i] = model.AnchorChainEntry{Height: anchors[i].Height, Tx: m.classifier.Classify(anchors[i].Tx)}
		return nil
	})
	if err != nil {
		return fmt.Errorf("classify anchors: %w", err)
	}
	for _, entry := range entries {
		if err := m.chain.Append(entry); err != nil {
			return fmt.Errorf("extend anchor chain: %w", err)
		}
	}
	return nil
}
