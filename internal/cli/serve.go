package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/protolab/protoboard/pkg/cache"
	"github.com/protolab/protoboard/pkg/store"

	"github.com/protolab/protoboard/internal/server"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
		mongoDB   string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The server exposes decode, encode, and layout operations plus layout and
correction persistence under /v1. Without --mongo, layouts and corrections
are kept in memory and lost on restart. Without --redis, pipeline results
are cached in the local file cache.

The server shuts down gracefully on SIGINT and SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr, redisAddr, mongoURI, mongoDB, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for shared caching (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB connection URI for persistence")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", appName, "MongoDB database name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the backends and serves until interrupted.
func (c *CLI) runServe(cmd *cobra.Command, addr, redisAddr, mongoURI, mongoDB string, noCache bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := c.newRunner(cmd, noCache, redisAddr, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	st, err := c.newStore(ctx, mongoURI, mongoDB)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(runner, st, c.Logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStore connects the persistence backend: MongoDB when a URI is given,
// otherwise in-memory. The Mongo connection is retried with backoff since
// the database may still be starting alongside the server.
func (c *CLI) newStore(ctx context.Context, mongoURI, mongoDB string) (store.Store, error) {
	if mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	var st store.Store
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		st, err = store.NewMongoStore(ctx, mongoURI, mongoDB)
		return cache.Retryable(err)
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("connected to MongoDB", "database", mongoDB)
	return st, nil
}
