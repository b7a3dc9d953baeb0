package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tilepath/internal/cli"
	"github.com/katalvlaran/tilepath/internal/ctxlog"
	"github.com/katalvlaran/tilepath/internal/httpapi"
	"github.com/katalvlaran/tilepath/internal/scenario"
	"github.com/katalvlaran/tilepath/tilemap"
)

// shutdownTimeout bounds how long in-flight HTTP requests may take to drain.
const shutdownTimeout = 5 * time.Second

// main is the entrypoint for the tilepath application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	m := tilemap.New(tilemap.WithLogger(logger))

	var sc *scenario.Scenario
	if cfg.ScenarioPath != "" {
		sc, err = scenario.Load(ctx, cfg.ScenarioPath)
		if err != nil {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
		if err := sc.Apply(ctx, m); err != nil {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
	}

	if cfg.ServeAddr != "" {
		return serve(ctx, cfg.ServeAddr, httpapi.New(m, logger, httpapi.WithMaxCells(cfg.MaxCells)))
	}

	for _, res := range sc.Run(ctx, m) {
		fmt.Fprintln(outW, formatResult(res))
	}

	return nil
}

// serve runs the HTTP API until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, addr string, api *httpapi.Server) error {
	logger := ctxlog.FromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server starting.", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("HTTP server shutting down.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// formatResult renders one query outcome as a single line.
func formatResult(res scenario.Result) string {
	if !res.Found() {
		return fmt.Sprintf("%s: no path", res.Query.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: length=%d cost=%d path=", res.Query.Name, res.Length, res.Cost)
	for i, p := range res.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d,%d)", p.X, p.Y)
	}

	return b.String()
}
