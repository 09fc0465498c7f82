package main

import (
	"context"
	"errors"
	"inventory/internal/app"
	"inventory/internal/app/consumers"
	"inventory/internal/app/deps"
	"inventory/internal/app/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	dl "inventory/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)
	shutdownConsumers := consumers.InitConsumers(deps, services)
	httpServer := app.InitHttpServer(deps, services)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		deps.Logger.Info(
			ctx,
			"HTTP server has started.",
			dl.Entry("address", httpServer.Addr),
			dl.Entry("isTestMode", deps.Config.IsTestMode),
		)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		deps.Logger.Info(context.Background(), "Shutdown signal received.")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error(context.Background(), "HTTP server failed.", dl.Entry("err", err))
		}
	}

	shutdownConsumers()
	shutdownHttpServer(httpServer, deps)
}

func shutdownHttpServer(server *http.Server, deps *deps.Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ShutdownTimeout)
	defer cancel()

	// Event streams never finish on their own.
	deps.SseServer.Close()
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "HTTP server did not shut down gracefully.", dl.Entry("err", err))
		return
	}
	deps.Logger.Info(ctx, "HTTP server has shut down.")
}
