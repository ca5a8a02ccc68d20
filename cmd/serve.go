package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrydhan/trackday/api/schedule"
	"github.com/wrydhan/trackday/config"
	"github.com/wrydhan/trackday/infra/logger"
	"github.com/wrydhan/trackday/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the schedule HTTP API",
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg := logger.New("serve")
	sink, err := metrics.NewPromSink(nil)
	if err != nil {
		return fmt.Errorf("prom sink: %w", err)
	}
	go func() {
		if err := metrics.StartPromServer(ctx, cfg.Serve.MetricsAddr); err != nil {
			logg.Errorf("prom server: %v", err)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/schedule", schedule.NewHandler(sink, logg))
	srv := &http.Server{Addr: cfg.Serve.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Errorf("server shutdown: %v", err)
		}
	}()

	logg.Infof("schedule API listening on %s", cfg.Serve.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
