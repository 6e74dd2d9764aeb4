// Package servecmder provides the serve command for running the API server.
package servecmder

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/api"
	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/config"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/logger"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
	"github.com/perusehq/peruse/pkg/storage/postgres"
	"github.com/perusehq/peruse/pkg/storage/sqlite"
	"github.com/perusehq/peruse/pkg/vector"
	vectorinmemory "github.com/perusehq/peruse/pkg/vector/inmemory"
	"github.com/perusehq/peruse/pkg/vector/qdrant"
	"github.com/perusehq/peruse/pkg/vector/sqlitevec"
)

// storeDriver is the slice of storage every serve dependency needs. Both
// the ent-backed drivers and the in-memory driver satisfy it.
type storeDriver interface {
	feed.ArticleStore
	feed.HistoryStore
	feed.ChunkStore
	comments.Store
	identity.Store
	Close() error
}

type serveCommander struct {
	cfg    *config.Config
	debug  bool
	logger *zap.Logger
}

const serveLongDesc string = `Run the Peruse API server.

Serves the ranked feed, the feed change stream, and the comment tree
endpoints on a single listen address. Storage and vector store backends
are selected via config.toml, PERUSE_ environment variables, or flags.

Examples:
  peruse serve
  peruse serve --listen :9090 --backend sqlite --sqlite ./peruse.db
  peruse serve --backend postgres --postgres-dsn postgres://peruse@localhost/peruse
  peruse serve --vector-store-provider qdrant --vector-store-target localhost:6334`

const serveShortDesc string = "Run the Peruse API server"

// serveFlags is the flag registry for the serve command.
var serveFlags = config.FlagSet{
	config.FlagAPIListen: {
		Name:        "listen",
		Shorthand:   "l",
		ViperKey:    "api.listen",
		Description: "Address for the API server to listen on",
	},
	config.FlagStreamPoll: {
		Name:        "stream-poll-seconds",
		ViperKey:    "api.stream_poll_seconds",
		Description: "Feed stream poll interval in seconds",
	},
	config.FlagBackend: {
		Name:        "backend",
		Shorthand:   "b",
		ViperKey:    "storage.backend",
		Description: "Storage backend (sqlite, postgres, inmemory)",
	},
	config.FlagSQLite: {
		Name:        "sqlite",
		Shorthand:   "s",
		ViperKey:    "storage.sqlite_path",
		Description: "Path to the SQLite database file",
	},
	config.FlagPostgresDSN: {
		Name:        "postgres-dsn",
		ViperKey:    "storage.postgres_dsn",
		Description: "Postgres connection string",
	},
	config.FlagVectorProv: {
		Name:        "vector-store-provider",
		ViperKey:    "vector_store.provider",
		Description: "Vector store provider (sqlite, qdrant, inmemory, none)",
	},
	config.FlagVectorTgt: {
		Name:        "vector-store-target",
		ViperKey:    "vector_store.target",
		Description: "Vector store target (sqlite path or qdrant host:port)",
	},
	config.FlagVectorColl: {
		Name:        "vector-store-collection",
		ViperKey:    "vector_store.collection",
		Description: "Qdrant collection name",
	},
	config.FlagVectorDims: {
		Name:        "vector-store-dimensions",
		ViperKey:    "vector_store.dimensions",
		Description: "Embedding dimensions; must match stored vectors",
	},
}

// serveFlagKeys are the registry keys bound to viper in PreRunE.
var serveFlagKeys = []string{
	config.FlagAPIListen,
	config.FlagStreamPoll,
	config.FlagBackend,
	config.FlagSQLite,
	config.FlagPostgresDSN,
	config.FlagVectorProv,
	config.FlagVectorTgt,
	config.FlagVectorColl,
	config.FlagVectorDims,
}

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	var (
		listen      string
		streamPoll  uint
		backend     string
		sqlitePath  string
		postgresDSN string
		vectorProv  string
		vectorTgt   string
		vectorColl  string
		vectorDims  uint
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, serveFlags, serveFlagKeys)
			cmder.cfg = config.FromViper(v)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			return cmder.run(cmd.Context())
		},
	}

	config.AddStringFlag(cmd, serveFlags, config.FlagAPIListen, &listen)
	config.AddUintFlag(cmd, serveFlags, config.FlagStreamPoll, &streamPoll)
	config.AddStringFlag(cmd, serveFlags, config.FlagBackend, &backend)
	config.AddStringFlag(cmd, serveFlags, config.FlagSQLite, &sqlitePath)
	config.AddStringFlag(cmd, serveFlags, config.FlagPostgresDSN, &postgresDSN)
	config.AddStringFlag(cmd, serveFlags, config.FlagVectorProv, &vectorProv)
	config.AddStringFlag(cmd, serveFlags, config.FlagVectorTgt, &vectorTgt)
	config.AddStringFlag(cmd, serveFlags, config.FlagVectorColl, &vectorColl)
	config.AddUintFlag(cmd, serveFlags, config.FlagVectorDims, &vectorDims)

	return cmd
}

func (c *serveCommander) run(ctx context.Context) error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	driver, err := c.newStorageDriver(ctx)
	if err != nil {
		return err
	}
	defer driver.Close()

	vectors, err := c.newVectorDriver(ctx)
	if err != nil {
		return err
	}
	if vectors != nil {
		defer vectors.Close()
	}

	rankerConfig := feed.Config{
		Balanced: feed.Weights{
			Recency:    c.cfg.Ranking.WeightRecency,
			External:   c.cfg.Ranking.WeightExternal,
			Similarity: c.cfg.Ranking.WeightSimilarity,
		},
		CandidateLimit: int(c.cfg.Ranking.CandidateLimit),
		SimilarityTopK: int(c.cfg.Ranking.SimilarityTopK),
	}
	ranker := feed.NewRanker(rankerConfig, driver, driver, driver, vectors, c.logger)

	pollInterval := time.Duration(c.cfg.API.StreamPollSeconds) * time.Second
	notifier := feed.NewNotifier(driver, pollInterval, c.logger)

	retry := storage.DefaultRetryConfig()
	commentService := comments.NewService(driver, retry, c.logger)
	auth := identity.NewAuthenticator(driver, retry, c.logger)

	server := api.NewServer(api.Config{
		ListenAddr:         c.cfg.API.Listen,
		StreamPollInterval: pollInterval,
	}, ranker, notifier, commentService, auth, c.logger)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}

func (c *serveCommander) newStorageDriver(ctx context.Context) (storeDriver, error) {
	switch c.cfg.Storage.Backend {
	case "sqlite":
		driver, err := sqlite.NewSQLiteDriver(c.cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite driver: %w", err)
		}
		c.logger.Info("using SQLite storage", zap.String("path", c.cfg.Storage.SQLitePath))
		return driver, nil

	case "postgres":
		driver, err := postgres.NewDriver(ctx, c.cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres driver: %w", err)
		}
		c.logger.Info("using Postgres storage")
		return driver, nil

	case "inmemory":
		c.logger.Info("using in-memory storage")
		return inmemory.NewDriver(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.cfg.Storage.Backend)
	}
}

func (c *serveCommander) newVectorDriver(ctx context.Context) (vector.Driver, error) {
	vs := c.cfg.VectorStore

	switch vs.Provider {
	case "none", "":
		c.logger.Info("vector store disabled; similar_first degrades to balanced")
		return nil, nil

	case "inmemory":
		c.logger.Info("using in-memory vector store")
		return vectorinmemory.NewDriver(), nil

	case "sqlite":
		driver, err := sqlitevec.NewDriver(sqlitevec.Config{
			DBPath:     vs.Target,
			Dimensions: vs.Dimensions,
		}, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite-vec driver: %w", err)
		}
		return driver, nil

	case "qdrant":
		host, port, err := splitHostPort(vs.Target)
		if err != nil {
			return nil, fmt.Errorf("parsing qdrant target: %w", err)
		}
		driver, err := qdrant.NewDriver(ctx, qdrant.Config{
			Host:           host,
			Port:           port,
			CollectionName: vs.Collection,
			Dimensions:     vs.Dimensions,
		}, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create qdrant driver: %w", err)
		}
		return driver, nil

	default:
		return nil, fmt.Errorf("unknown vector store provider %q", vs.Provider)
	}
}

func splitHostPort(target string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(target)
	if err != nil {
		return "", 0, err
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}

	return host, port, nil
}
