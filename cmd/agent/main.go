package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sharepad/sharepad/internal/agent"
	"github.com/sharepad/sharepad/internal/app"
	"github.com/sharepad/sharepad/internal/buildinfo"
	"github.com/sharepad/sharepad/internal/config"
	"github.com/sharepad/sharepad/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	a, err := app.New(ctx, cfg, agent.Notifier(cfg.NotifyEnabled, nil))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	srv := httpapi.NewServer(cfg.HTTPAddr, a.Router, a.Log.With("component", "httpapi"))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Error(ctx, "http api stopped", "error", err)
			stop()
		}
	}()

	watcher := agent.NewWatcher(a.Router, cfg.PollInterval, a.Log.With("component", "watcher"))
	go watcher.Run(ctx)

	<-ctx.Done()
	a.Log.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Log.Error(shutdownCtx, "http api shutdown", "error", err)
	}

}
