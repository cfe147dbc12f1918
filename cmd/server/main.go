package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hz-solucoes/financas/internal/auth"
	"github.com/hz-solucoes/financas/internal/bot"
	"github.com/hz-solucoes/financas/internal/config"
	"github.com/hz-solucoes/financas/internal/gateway"
	"github.com/hz-solucoes/financas/internal/metrics"
	"github.com/hz-solucoes/financas/internal/middleware"
	"github.com/hz-solucoes/financas/internal/service"
	"github.com/hz-solucoes/financas/internal/storage/sqlite"
	"github.com/hz-solucoes/financas/internal/webhook"
	"github.com/hz-solucoes/financas/pkg/logging"
	"github.com/hz-solucoes/financas/pkg/rpc"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	botCfg := bot.Config{
		DefaultNamePrefix:      cfg.NamePrefix,
		DefaultWaterAmount:     cfg.WaterDefaultML,
		DailyWaterGoal:         cfg.WaterGoalML,
		RecentTransactionLimit: cfg.RecentTxLimit,
	}
	interpreter := bot.NewInterpreter(store, botCfg, slog.Default())

	var sender gateway.Sender = gateway.Noop{}
	if cfg.WhatsAppURL != "" {
		sender = gateway.NewWhatsApp(cfg.WhatsAppURL, cfg.WhatsAppToken)
		slog.Info("WhatsApp gateway configured", "url", cfg.WhatsAppURL)
	} else {
		slog.Warn("No WhatsApp gateway configured, replies are webhook-only")
	}

	mux := http.NewServeMux()

	// Auth procedures are public; everything else requires a token.
	public := []connect.HandlerOption{
		connect.WithCodec(rpc.Codec{}),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	}
	protected := []connect.HandlerOption{
		connect.WithCodec(rpc.Codec{}),
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.RequireAuth(jwtManager),
		),
	}

	service.NewAuthService(authenticator, jwtManager, slog.Default()).Mount(mux, public...)
	service.NewTransactionService(store).Mount(mux, protected...)
	service.NewGoalService(store).Mount(mux, protected...)
	service.NewShoppingService(store).Mount(mux, protected...)
	service.NewCareService(store, botCfg).Mount(mux, protected...)
	service.NewAccountService(store).Mount(mux, protected...)

	mux.Handle("/webhook/whatsapp", webhook.NewHandler(interpreter, sender, slog.Default()))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	handler := corsMiddleware(mux)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect over gRPC)
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
