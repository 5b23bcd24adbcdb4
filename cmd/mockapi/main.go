// Package main запускает dev-мок внешнего REST-сервиса заказов.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/orderdesk/internal/mockapi"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	addr := flag.String("a", "localhost:3000", "address and port for the mock API")
	seedPath := flag.String("f", "", "path to a JSON seed file (built-in demo data when empty)")
	flag.Parse()

	seed := mockapi.DefaultSeed()
	if *seedPath != "" {
		loaded, err := mockapi.LoadSeed(*seedPath)
		if err != nil {
			sugar.Fatalw("seed file error", "error", err.Error())
		}
		seed = loaded
	}

	srv := mockapi.NewServer(seed, logger)

	server := &http.Server{
		Addr:    *addr,
		Handler: srv.SetupRouter(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting mock API", "addr", *addr, "users", len(seed.Users), "orders", len(seed.Orders))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down mock API...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
