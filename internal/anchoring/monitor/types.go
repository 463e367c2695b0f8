package monitor

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		LatestLects(ctx context.Context, network model.Network) ([]model.LectRecord, error)
		AnchoringConfigs(ctx context.Context, network model.Network) ([]model.AnchoringConfig, error)
		AnchorChain(ctx context.Context, network model.Network, fromHeight uint64) ([]model.AnchorRecord, error)
		InsertLectObservations(ctx context.Context, observations []model.LectObservation) error
	}
	RPCClient interface {
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}
	Metrics interface {
		ObserveIteration(err error, started time.Time)
		SetReporting(validators int)
		SetAgreed(tx model.TxKind, confirmations uint64)
		SetNoAgreement()
	}
	Health interface {
		SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
	}
	Clock interface {
		Now() time.Time
		Sleep(ctx context.Context, d time.Duration) error
	}
)
