package main

import (
	"context"
	"errors"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"game-backend/domain/event"
	"game-backend/games"
	"game-backend/gateway"
	"game-backend/infrastructure/grpc/client"
	"game-backend/infrastructure/grpc/server"
	"game-backend/infrastructure/storage"
	"game-backend/internal"
	"game-backend/moderation"
	"game-backend/names"
	"game-backend/observability"
	"game-backend/rpc"
	"game-backend/runtime"
	"game-backend/runtime/workers"
	"game-backend/services"
	"game-backend/wire"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const nameCacheEntries = 100_000

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "game-backend terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer on the return path so the archive and the
// connections are closed before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Room archive (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	archive := storage.NewRoomArchive(db, logger, config.ArchiveTTL)

	// 3. Moderation & display names
	censored, err := moderation.NewEmbeddedLoader().LoadAll("censored")
	if err != nil {
		return exitRuntime, fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, charReplacement, logger)
	if err != nil {
		return exitRuntime, err
	}
	logger.Info("Moderation ready", "languages", censored.Languages, "words", len(censored.Words))

	resolver, err := names.NewCachedResolver(names.NewStaticResolver(nil), nameCacheEntries, config.NameCacheTTL)
	if err != nil {
		return exitRuntime, fmt.Errorf("name cache failed: %w", err)
	}
	defer resolver.Close()

	// 4. Gateway chain: local websocket hub first, then optional remote targets
	metrics := observability.NewMetrics()
	telemetryChan := make(chan event.Event, config.BufferSize)
	hub := gateway.NewHub(logger, config.ConnectionBufferSize)
	targets := []contract.Gateway{hub}

	if config.GatewayNatsURL != "" {
		natsGateway, conn, err := gateway.DialNats(config.GatewayNatsURL, logger)
		if err != nil {
			return exitRuntime, fmt.Errorf("nats connection failed: %w", err)
		}
		defer conn.Close()
		targets = append(targets, gateway.NewRetrying(natsGateway, logger, metrics, telemetryChan,
			config.GatewaySendRetries, config.GatewayRetryBackoff))
	}
	if config.GatewayAddr != "" {
		remote, conn, err := client.DialGateway(config.GatewayAddr, config.GatewayCallTimeout)
		if err != nil {
			return exitRuntime, fmt.Errorf("gateway connection failed: %w", err)
		}
		defer func() { _ = conn.Close() }()
		targets = append(targets, gateway.NewRetrying(remote, logger, metrics, telemetryChan,
			config.GatewaySendRetries, config.GatewayRetryBackoff))
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		targets = append(targets, gateway.NewLogGateway(logger))
	}

	// 5. Supervision & rooms
	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	registry := runtime.NewRegistry(ctx, logger, sup, gateway.NewFanout(targets...), games.DefaultCatalog(), runtime.Config{
		InboxDepth:       config.InputInboxDepth,
		MatchMaxDuration: config.MatchMaxDuration(),
		FinishedGrace:    config.FinishedGrace(),
		WaitingTimeout:   config.WaitingTimeout(),
	}).
		WithResolver(resolver).
		WithArchive(archive).
		WithModerator(moderator).
		WithMetrics(metrics).
		WithTelemetry(telemetryChan)
	hub.Bind(registry)

	self := domain.Process{PID: domain.PID(os.Getpid()), Name: "game-backend"}
	sup.Add(
		workers.NewSweepWorker(logger, registry, config.SweepInterval),
		workers.NewTelemetryWorker(logger, telemetryChan,
			event.NewCensoredHandler(logger),
			event.NewGatewayDropHandler(logger),
			event.NewChannelCapacityHandler(logger, config.LowCapacityThreshold),
			event.NewProcessTrackerHandler(logger, metrics),
			event.NewWorkerRestartedAfterPanicHandler(logger, metrics),
		),
		workers.NewHealthMonitoringWorker(logger, telemetryChan, make(chan domain.Process), config.MetricInterval, self),
		workers.NewChannelCapacityWorker(logger, []workers.NamedChannel{
			{Name: "telemetry", Channel: telemetryChan},
		}, telemetryChan, config.MetricInterval),
		workers.NewReporterWorker(logger, registry.Stats, metrics, config.MetricInterval),
	)

	errChan := make(chan error, 3)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		logger.Info("Starting supervisor...")
		sup.Run(ctx)
	}()

	// 6. gRPC Server Setup
	listener, err := net.Listen("tcp", config.ListenAddr)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.ListenAddr, err)
	}
	s := grpc.NewServer(
		rpc.ServerOption(),
		grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)),
	)
	roomService := services.NewRoomService(logger, registry, hub.Subscriptions())
	rpc.RegisterGameServiceServer(s, server.NewGameServer(logger, roomService, config.ConnectionBufferSize))
	rpc.RegisterGatewayServiceServer(s, server.NewGatewayServer(hub))

	go func() {
		logger.Info("Starting gRPC server", "address", config.ListenAddr, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Websocket & debug HTTP servers
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	wsServer := &http.Server{Addr: config.WebsocketAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	httpServers := []*http.Server{wsServer}

	if config.DebugPort > 0 {
		statsProvider := func() map[string]any {
			return map[string]any{"rooms": registry.Stats(), "metrics": metrics.Snapshot()}
		}
		httpServers = append(httpServers, internal.NewDebugServer(logger, config.DebugPort, statsProvider, archive))
		if logger.Enabled(ctx, slog.LevelDebug) {
			badgerPort := config.DebugPort + 1
			logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", badgerPort))
			database.StartDebugServer(db, badgerPort, "/inspect", ArchiveMapper)
		}
	}
	for _, srv := range httpServers {
		go func(srv *http.Server) {
			logger.Info("Starting HTTP server", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("http server %s error: %w", srv.Addr, err)
			}
		}(srv)
	}

	// 8. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 9. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range httpServers {
		_ = srv.Shutdown(shutdownCtx)
	}
	s.GracefulStop()
	stop()
	sup.Stop()
	select {
	case <-supervisorDone:
	case <-shutdownCtx.Done():
		logger.Warn("Workers still running after shutdown timeout")
	}
	logger.Info("Program stopped cleanly")

	return code, runErr
}

// buildBadgerOpts keeps the archive in memory when no path is configured.
func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	if config.BadgerFilepath == "" {
		return badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG).WithBypassLockGuard(true)
	}
	return options.WithLoggingLevel(badger.INFO)
}

func ArchiveMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	info, err := wire.UnmarshalRoomInfo(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	inspect := internal.ToInspectRow(info)
	row.Type = inspect.State
	row.Detail = fmt.Sprintf("%s %s", inspect.GameType, inspect.Players)
	if info.Error != "" {
		row.Detail += " (" + info.Error + ")"
	}
	row.Scores = "-"
	return row
}
