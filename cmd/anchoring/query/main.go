package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/service"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/ledger/fixture"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/metrics"
)

type config struct {
	Ledger    string `long:"ledger" env:"ANCHORING_QUERY_LEDGER" description:"YAML ledger dump" required:"true"`
	Op        string `long:"op" env:"ANCHORING_QUERY_OP" description:"query to run" choice:"actual-lect" choice:"validator-lect" choice:"actual-address" choice:"following-address" choice:"nearest-lect" choice:"block-proof" choice:"anchor-chain" required:"true"`
	Validator uint32 `long:"validator" env:"ANCHORING_QUERY_VALIDATOR" description:"validator id for validator-lect"`
	Height    uint64 `long:"height" env:"ANCHORING_QUERY_HEIGHT" description:"ledger height for nearest-lect and block-proof"`
}

// chainEntry is the printable form of an anchor chain entry.
type chainEntry struct {
	Height  uint64         `json:"height"`
	TxID    model.TxID     `json:"txid"`
	Payload *model.Payload `json:"payload"`
}

type failure struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("anchoring query failed", zap.String("op", cfg.Op), zap.Error(err))
		_ = encode(os.Stdout, failure{Status: service.StatusCode(err), Error: service.PublicMessage(err)})
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ledger, err := fixture.Load(cfg.Ledger)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	logger = logger.With(zap.String("network", string(ledger.Network)))
	if latest, ok := ledger.Snapshot.LatestHeight(); ok {
		logger.Debug("ledger loaded", zap.Uint64("latest_height", latest))
	}

	api := service.NewPublicAPI(metrics.NewPublicAPI(ledger.Network), logger.Named("api"))
	snap := ledger.Snapshot

	var result any
	switch cfg.Op {
	case "actual-lect":
		result, err = api.ActualLect(snap)
	case "validator-lect":
		result, err = api.CurrentLectOfValidator(snap, cfg.Validator)
	case "actual-address":
		result, err = api.ActualAddress(snap)
	case "following-address":
		result, err = api.FollowingAddress(snap)
	case "nearest-lect":
		var entry *model.AnchorChainEntry
		entry, err = api.NearestLect(snap, cfg.Height)
		if entry != nil {
			result = chainEntry{Height: entry.Height, TxID: entry.Tx.TxID(), Payload: entry.Tx.Payload}
		}
	case "block-proof":
		result, err = api.AnchoredBlockHeaderProof(snap, cfg.Height)
	case "anchor-chain":
		entries := snap.AnchorChain().Entries()
		chain := make([]chainEntry, 0, len(entries))
		for _, entry := range entries {
			chain = append(chain, chainEntry{Height: entry.Height, TxID: entry.Tx.TxID(), Payload: entry.Tx.Payload})
		}
		result = chain
	default:
		return fmt.Errorf("unknown op %q", cfg.Op)
	}
	if err != nil {
		return err
	}
	return encode(out, result)
}

func encode(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
