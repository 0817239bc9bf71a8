// Package main はSync Serverのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/audit"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/coordinator"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/disconnect"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/handler"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/nasreg"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/presence"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/propagation"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/routeros"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/server"
	"github.com/oyaguma3/radsync/apps/sync-server/internal/store"
	"github.com/oyaguma3/radsync/pkg/logging"
)

const appName = "sync-server"

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)
	masker := logging.NewMasker(cfg.LogMaskPII)

	slog.Info("starting sync-server",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"log_mask_pii", masker.IsEnabled(),
		"router_api_scheme", cfg.RouterAPIScheme,
		"redis_pass", masker.Secret(cfg.RedisPass),
	)

	ctx := context.Background()

	// 3. DB接続
	radiusDB, err := store.OpenDB(ctx, cfg.RadiusDBDSN)
	if err != nil {
		slog.Error("failed to open RADIUS database", "error", err)
		os.Exit(1)
	}
	defer radiusDB.Close()

	billingDB, err := store.OpenDB(ctx, cfg.BillingDBDSN)
	if err != nil {
		slog.Error("failed to open billing database", "error", err)
		os.Exit(1)
	}
	defer billingDB.Close()

	// 4. Valkey接続
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("failed to connect to Valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("connected to Valkey", "addr", cfg.RedisAddr())

	// 5. 依存オブジェクト生成
	dispatcher := events.NewDispatcher()
	routers := store.NewRouterRepository(billingDB, dispatcher)
	credentials := store.NewCredentialStore(radiusDB)
	nasRegistry := store.NewNasRegistry(radiusDB)
	accountingLog := store.NewAccountingLog(radiusDB)
	mirror := store.NewClientMirror(valkeyClient)
	auditLogger := audit.NewLogger(appName)

	resolver := presence.NewResolver(accountingLog)
	disconnector := disconnect.NewDisconnector(mirror, nasRegistry, cfg.DisconnectPort)

	// オブザーバー登録
	coord := coordinator.NewCoordinator(credentials, resolver, disconnector, auditLogger, masker)
	registrar := nasreg.NewRegistrar(nasRegistry, routers, mirror, auditLogger)
	dispatcher.SubscribeCustomer(coord)
	dispatcher.SubscribeRouter(registrar)

	// パスワード反映
	deviceClient := routeros.NewClient(cfg)
	passwordService := propagation.NewService(deviceClient, auditLogger, masker)

	// ハンドラー
	syncHandler := handler.NewHandler(dispatcher, passwordService, coord, resolver, auditLogger, nasRegistry)

	// 6. サーバー起動
	srv := server.New(cfg, syncHandler)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 7. シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	logHandler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(logHandler).With("app", appName)
	slog.SetDefault(logger)
}
