// Package backfillcmder provides the backfill command for rebuilding the
// vector index from the relational chunk table.
package backfillcmder

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/backfill"
	"github.com/perusehq/peruse/pkg/config"
	"github.com/perusehq/peruse/pkg/logger"
	"github.com/perusehq/peruse/pkg/storage/postgres"
	"github.com/perusehq/peruse/pkg/storage/sqlite"
	"github.com/perusehq/peruse/pkg/vector"
	"github.com/perusehq/peruse/pkg/vector/qdrant"
	"github.com/perusehq/peruse/pkg/vector/sqlitevec"
)

// chunkSource is the slice of storage the reindex run needs.
type chunkSource interface {
	backfill.Source
	Close() error
}

type backfillCommander struct {
	cfg       *config.Config
	debug     bool
	dryRun    bool
	batchSize int
	logger    *zap.Logger
}

const backfillLongDesc string = `Rebuild the vector index from the relational chunk table.

The relational database is the source of truth for chunk embeddings. Run
this after pointing Peruse at a new or emptied vector store so similarity
ranking covers previously ingested articles.

Examples:
  peruse backfill --sqlite ./peruse.db --vector-store-target ./peruse-vec.db
  peruse backfill --backend postgres --postgres-dsn postgres://peruse@localhost/peruse \
    --vector-store-provider qdrant --vector-store-target localhost:6334
  peruse backfill --sqlite ./peruse.db --vector-store-target ./peruse-vec.db --dry-run`

// backfillFlags is the flag registry for the backfill command.
var backfillFlags = config.FlagSet{
	config.FlagBackend: {
		Name:        "backend",
		Shorthand:   "b",
		ViperKey:    "storage.backend",
		Description: "Storage backend (sqlite, postgres)",
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
		Description: "Vector store provider (sqlite, qdrant)",
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

var backfillFlagKeys = []string{
	config.FlagBackend,
	config.FlagSQLite,
	config.FlagPostgresDSN,
	config.FlagVectorProv,
	config.FlagVectorTgt,
	config.FlagVectorColl,
	config.FlagVectorDims,
}

func NewBackfillCmd() *cobra.Command {
	cmder := &backfillCommander{}

	var (
		backend     string
		sqlitePath  string
		postgresDSN string
		vectorProv  string
		vectorTgt   string
		vectorColl  string
		vectorDims  uint
	)

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Rebuild the vector index from stored chunks",
		Long:  backfillLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, backfillFlags, backfillFlagKeys)
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

	config.AddStringFlag(cmd, backfillFlags, config.FlagBackend, &backend)
	config.AddStringFlag(cmd, backfillFlags, config.FlagSQLite, &sqlitePath)
	config.AddStringFlag(cmd, backfillFlags, config.FlagPostgresDSN, &postgresDSN)
	config.AddStringFlag(cmd, backfillFlags, config.FlagVectorProv, &vectorProv)
	config.AddStringFlag(cmd, backfillFlags, config.FlagVectorTgt, &vectorTgt)
	config.AddStringFlag(cmd, backfillFlags, config.FlagVectorColl, &vectorColl)
	config.AddUintFlag(cmd, backfillFlags, config.FlagVectorDims, &vectorDims)

	cmd.Flags().BoolVar(&cmder.dryRun, "dry-run", false, "Scan and count without writing to the vector index")
	cmd.Flags().IntVar(&cmder.batchSize, "batch-size", backfill.DefaultBatchSize, "Chunks per reindex batch")

	return cmd
}

func (c *backfillCommander) run(ctx context.Context) error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	source, err := c.newChunkSource(ctx)
	if err != nil {
		return err
	}
	defer source.Close()

	vectors, err := c.newVectorDriver(ctx)
	if err != nil {
		return err
	}
	defer vectors.Close()

	reindexer := backfill.NewReindexer(source, vectors, backfill.Options{
		BatchSize: c.batchSize,
		DryRun:    c.dryRun,
	}, c.logger)

	result, err := reindexer.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(result.Summary())
	return nil
}

func (c *backfillCommander) newChunkSource(ctx context.Context) (chunkSource, error) {
	switch c.cfg.Storage.Backend {
	case "sqlite":
		driver, err := sqlite.NewSQLiteDriver(c.cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite driver: %w", err)
		}
		return driver, nil

	case "postgres":
		driver, err := postgres.NewDriver(ctx, c.cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres driver: %w", err)
		}
		return driver, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.cfg.Storage.Backend)
	}
}

func (c *backfillCommander) newVectorDriver(ctx context.Context) (vector.Driver, error) {
	vs := c.cfg.VectorStore

	switch vs.Provider {
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
		host, portStr, err := net.SplitHostPort(vs.Target)
		if err != nil {
			return nil, fmt.Errorf("parsing qdrant target: %w", err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", portStr, err)
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
		return nil, fmt.Errorf("reindex requires a persistent vector store, got provider %q", vs.Provider)
	}
}
