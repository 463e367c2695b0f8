package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/bitcoin"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/model"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/monitor"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/anchoring/repository/clickhouse"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/clock"
	"github.com/goodnatureofminers/btcanchoring-backend/internal/metrics"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"LECT_MONITOR_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network       string        `long:"network" env:"LECT_MONITOR_NETWORK" description:"bitcoin network" choice:"mainnet" choice:"testnet" choice:"regtest" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"LECT_MONITOR_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"LECT_MONITOR_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"LECT_MONITOR_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Interval      time.Duration `long:"interval" env:"LECT_MONITOR_INTERVAL" description:"pause between checks" default:"30s"`
	GRPCAddr      string        `long:"grpc-addr" env:"LECT_MONITOR_GRPC_ADDR" description:"gRPC health addr" default:":8000"`
	MetricsAddr   string        `long:"metrics-addr" env:"LECT_MONITOR_METRICS_ADDR" description:"metrics addr" default:":8001"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("lect monitor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	logger = logger.With(zap.String("network", cfg.Network))

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	client, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		client.Shutdown()
		client.WaitForShutdown()
	}()
	rpc := bitcoin.NewRPCClient(client, metrics.NewRPCClient(network))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(monitor.HealthService, healthpb.HealthCheckResponse_NOT_SERVING)
	if err := serveGRPC(ctx, cfg.GRPCAddr, healthServer, logger); err != nil {
		return err
	}
	serveMetrics(ctx, cfg.MetricsAddr, logger)

	mon := monitor.NewLectMonitor(
		repo,
		rpc,
		metrics.NewLectMonitor(network),
		healthServer,
		clock.Real{},
		network,
		cfg.Interval,
		logger.Named("lectMonitor"),
	)
	logger.Info("starting lect monitor", zap.Duration("interval", cfg.Interval))
	return mon.Run(ctx)
}

func serveGRPC(ctx context.Context, addr string, healthServer *health.Server, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(
			grpcRecovery.StreamServerInterceptor(),
			grpcPrometheus.StreamServerInterceptor,
		)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		logger.Info("starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()
	return nil
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen and serve", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
