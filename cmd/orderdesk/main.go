// Package main запускает HTTP-приложение orderdesk.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/orderdesk/internal/api"
	"github.com/mmeshcher/orderdesk/internal/config"
	"github.com/mmeshcher/orderdesk/internal/handler"
	"github.com/mmeshcher/orderdesk/internal/service"
	"github.com/mmeshcher/orderdesk/internal/session"
	"github.com/mmeshcher/orderdesk/internal/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	store, err := storage.OpenFile(cfg.StatePath)
	if err != nil {
		if !errors.Is(err, storage.ErrMalformedState) {
			sugar.Fatalw("state storage error", "error", err.Error())
		}
		// Повреждённое состояние отбрасывается: сессия стартует анонимной.
		sugar.Warnw("malformed session state, starting anonymous", "path", cfg.StatePath)
	}

	client := api.NewClient(cfg.APIAddress)

	orders := service.NewOrders(client)
	auth := service.NewAuth(client)
	sess := session.New(auth, store)

	h := handler.NewHandler(orders, sess, logger)
	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting orderdesk server", "addr", cfg.RunAddress, "api", cfg.APIAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
