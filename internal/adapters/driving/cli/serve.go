package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docfolio/docfolio/internal/adapters/driven/config/file"
	"github.com/docfolio/docfolio/internal/adapters/driven/qr"
	"github.com/docfolio/docfolio/internal/adapters/driving/web"
	"github.com/docfolio/docfolio/internal/connectors/google"
	"github.com/docfolio/docfolio/internal/connectors/google/drive"
	"github.com/docfolio/docfolio/internal/connectors/manifest"
	"github.com/docfolio/docfolio/internal/core/ports/driven"
	"github.com/docfolio/docfolio/internal/core/services"
	"github.com/docfolio/docfolio/internal/logger"
	"github.com/docfolio/docfolio/internal/normalisers/gdocs"
)

const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the refresh loop and HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := file.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, trigger, cleanup, err := buildSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	registry := services.NewRegistry()

	var opts []services.RefresherOption
	if trigger != nil {
		opts = append(opts, services.WithTrigger(trigger))
	}
	refresher := services.NewRefresher(source, gdocs.New(), registry, cfg.RefreshInterval(), opts...)

	go func() {
		if err := refresher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("refresh loop: %v", err)
		}
	}()
	defer refresher.Stop() //nolint:errcheck

	server := web.NewServer(registry, qr.NewEncoder(), web.Options{
		PageTitle:  cfg.PageTitle,
		PageHeader: cfg.PageHeader,
		BaseURL:    cfg.BaseURL,
		HomeLink:   cfg.HomeLink,
	})

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("docfolio: %s source, refresh every %s, listening on %s",
		source.Type(), cfg.RefreshInterval(), cfg.ListenAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// buildSource constructs the configured document source. For the
// manifest source a file watcher is attached when possible; watch
// failure degrades to interval-only refresh.
func buildSource(ctx context.Context, cfg file.Config) (driven.DocumentSource, <-chan struct{}, func(), error) {
	noop := func() {}

	switch cfg.SourceType() {
	case file.SourceDrive:
		svc, err := google.NewDriveService(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("drive service: %w", err)
		}
		return drive.New(svc, cfg.FolderURL), nil, noop, nil

	case file.SourceManifest:
		src := manifest.New(cfg.ManifestPath)
		watcher, err := manifest.Watch(cfg.ManifestPath)
		if err != nil {
			logger.Warn("manifest: watch unavailable, interval refresh only: %v", err)
			return src, nil, noop, nil
		}
		return src, watcher.Events(), func() { _ = watcher.Close() }, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown source type %q", cfg.SourceType())
	}
}
