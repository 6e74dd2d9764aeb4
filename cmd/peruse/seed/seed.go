// Package seedcmder provides the seed command for loading demo content.
package seedcmder

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/config"
	"github.com/perusehq/peruse/pkg/eventstream"
	eventkafka "github.com/perusehq/peruse/pkg/eventstream/kafka"
	"github.com/perusehq/peruse/pkg/ingest"
	"github.com/perusehq/peruse/pkg/logger"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/sqlite"
	"github.com/perusehq/peruse/pkg/vector"
	"github.com/perusehq/peruse/pkg/vector/sqlitevec"
)

const seedLongDesc string = `Seed demo articles and comments into a SQLite database.

Creates a handful of sources, articles with metadata and embeddings, a
short reading history, and a demo comment thread. Useful for trying the
feed endpoints without running scrapers.

Examples:
  peruse seed
  peruse seed --sqlite ./peruse.db
  peruse seed --events-provider kafka --events-brokers localhost:9092`

const seedShortDesc string = "Seed demo articles"

// seedFlags is the flag registry for the seed command.
var seedFlags = config.FlagSet{
	config.FlagSQLite: {
		Name:        "sqlite",
		Shorthand:   "s",
		ViperKey:    "storage.sqlite_path",
		Description: "Path to the SQLite database file",
	},
	config.FlagVectorTgt: {
		Name:        "vector-store-target",
		ViperKey:    "vector_store.target",
		Description: "sqlite-vec database path (empty: skip vector mirror)",
	},
	config.FlagVectorDims: {
		Name:        "vector-store-dimensions",
		ViperKey:    "vector_store.dimensions",
		Description: "Embedding dimensions for the demo vectors",
	},
	config.FlagEventsProvider: {
		Name:        "events-provider",
		ViperKey:    "events.provider",
		Description: "Ingestion event provider (none, kafka)",
	},
	config.FlagEventsBrokers: {
		Name:        "events-brokers",
		ViperKey:    "events.brokers",
		Description: "Kafka broker addresses",
	},
	config.FlagEventsTopic: {
		Name:        "events-topic",
		ViperKey:    "events.topic",
		Description: "Kafka topic for ingestion events",
	},
}

var seedFlagKeys = []string{
	config.FlagSQLite,
	config.FlagVectorTgt,
	config.FlagVectorDims,
	config.FlagEventsProvider,
	config.FlagEventsBrokers,
	config.FlagEventsTopic,
}

type seedCommander struct {
	cfg    *config.Config
	debug  bool
	logger *zap.Logger
}

func NewSeedCmd() *cobra.Command {
	cmder := &seedCommander{}

	var (
		sqlitePath    string
		vectorTgt     string
		vectorDims    uint
		eventsProv    string
		eventsBrokers []string
		eventsTopic   string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: seedShortDesc,
		Long:  seedLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, seedFlags, seedFlagKeys)
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

	config.AddStringFlag(cmd, seedFlags, config.FlagSQLite, &sqlitePath)
	config.AddStringFlag(cmd, seedFlags, config.FlagVectorTgt, &vectorTgt)
	config.AddUintFlag(cmd, seedFlags, config.FlagVectorDims, &vectorDims)
	config.AddStringFlag(cmd, seedFlags, config.FlagEventsProvider, &eventsProv)
	config.AddStringSliceFlag(cmd, seedFlags, config.FlagEventsBrokers, &eventsBrokers)
	config.AddStringFlag(cmd, seedFlags, config.FlagEventsTopic, &eventsTopic)

	return cmd
}

func (c *seedCommander) run(ctx context.Context) error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	driver, err := sqlite.NewSQLiteDriver(c.cfg.Storage.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to create SQLite driver: %w", err)
	}
	defer driver.Close()

	var vectors vector.Driver
	if c.cfg.VectorStore.Target != "" {
		vectors, err = sqlitevec.NewDriver(sqlitevec.Config{
			DBPath:     c.cfg.VectorStore.Target,
			Dimensions: c.cfg.VectorStore.Dimensions,
		}, c.logger)
		if err != nil {
			return fmt.Errorf("failed to create sqlite-vec driver: %w", err)
		}
		defer vectors.Close()
	}

	var publisher eventstream.Publisher
	if c.cfg.Events.Provider == "kafka" {
		kp := eventkafka.NewPublisher(eventkafka.Config{
			Brokers: c.cfg.Events.Brokers,
			Topic:   c.cfg.Events.Topic,
		})
		defer kp.Close()
		publisher = kp
	}

	ingestService := ingest.NewService(driver, vectors, publisher, c.logger)
	commentService := comments.NewService(driver, storage.DefaultRetryConfig(), c.logger)

	summary, err := SeedDemo(ctx, ingestService, commentService)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d articles (%d with history) and %d comments into %s\n",
		summary.Articles, summary.HistoryEntries, summary.Comments, c.cfg.Storage.SQLitePath)
	return nil
}

// Summary reports what SeedDemo created.
type Summary struct {
	Articles       int
	HistoryEntries int
	Comments       int
}

// demoDims is the embedding dimensionality of the generated demo vectors.
const demoDims = 8

// SeedDemo loads a small, deterministic demo dataset through the ingestion
// service: three sources, eight articles, a short reading history, and a
// comment thread on the demo post.
func SeedDemo(ctx context.Context, ing *ingest.Service, cs *comments.Service) (Summary, error) {
	var summary Summary

	now := time.Now().UTC()
	score := func(s float64) *float64 { return &s }

	subs := []ingest.Submission{
		{
			URL:           "https://example.com/articles/sqlite-vec-internals",
			Title:         "How sqlite-vec stores vectors",
			ContentText:   "A walk through the virtual table layout sqlite-vec uses for embeddings.",
			SourceKey:     "hn",
			SourceName:    "Hacker News",
			SourceBaseURL: "https://news.ycombinator.com",
			ExternalScore: score(241),
			SubmittedAt:   now.Add(-2 * time.Hour),
			Metadata:      map[string]any{"hn_id": 39120001},
			Embeddings:    [][]float32{demoEmbedding("sqlite-vec-internals", demoDims)},
		},
		{
			URL:           "https://example.com/articles/go-sse-patterns",
			Title:         "Server-sent events in Go without surprises",
			ContentText:   "Flushing, keep-alives, and disconnect detection for long-lived streams.",
			SourceKey:     "hn",
			SourceName:    "Hacker News",
			SourceBaseURL: "https://news.ycombinator.com",
			ExternalScore: score(87),
			SubmittedAt:   now.Add(-5 * time.Hour),
			Metadata:      map[string]any{"hn_id": 39120002},
			Embeddings:    [][]float32{demoEmbedding("go-sse-patterns", demoDims)},
		},
		{
			URL:           "https://example.com/articles/ranking-beyond-chronological",
			Title:         "Feed ranking beyond reverse-chronological",
			ContentText:   "Blending recency with engagement and similarity signals.",
			SourceKey:     "lobsters",
			SourceName:    "Lobsters",
			SourceBaseURL: "https://lobste.rs",
			ExternalScore: score(34),
			SubmittedAt:   now.Add(-26 * time.Hour),
			Embeddings:    [][]float32{demoEmbedding("ranking-beyond-chronological", demoDims)},
		},
		{
			URL:           "https://example.com/articles/ent-edges",
			Title:         "Modeling trees with ent edges",
			ContentText:   "Self-referential edges and cascade deletes for threaded data.",
			SourceKey:     "lobsters",
			SourceName:    "Lobsters",
			SourceBaseURL: "https://lobste.rs",
			ExternalScore: score(19),
			SubmittedAt:   now.Add(-30 * time.Hour),
			Embeddings:    [][]float32{demoEmbedding("ent-edges", demoDims)},
		},
		{
			URL:           "https://example.com/articles/qdrant-grpc",
			Title:         "Talking to Qdrant over gRPC",
			ContentText:   "Collections, point upserts, and scored search from Go.",
			SourceKey:     "hn",
			SourceName:    "Hacker News",
			SourceBaseURL: "https://news.ycombinator.com",
			ExternalScore: score(412),
			SubmittedAt:   now.Add(-49 * time.Hour),
			Metadata:      map[string]any{"hn_id": 39119871},
			Embeddings:    [][]float32{demoEmbedding("qdrant-grpc", demoDims)},
		},
		{
			URL:         "https://example.com/blog/hello-peruse",
			Title:       "Hello, Peruse",
			ContentText: "Introducing a small aggregation and discussion backend.",
			SourceKey:   "blog",
			SourceName:  "Blog",
			SubmittedAt: now.Add(-72 * time.Hour),
			Embeddings:  [][]float32{demoEmbedding("hello-peruse", demoDims)},
		},
		{
			URL:         "https://example.com/articles/viper-precedence",
			Title:       "Configuration precedence done right",
			ContentText: "Flags over env over file over defaults, with one source of truth.",
			SourceKey:   "blog",
			SourceName:  "Blog",
			SubmittedAt: now.Add(-100 * time.Hour),
			Embeddings:  [][]float32{demoEmbedding("viper-precedence", demoDims)},
		},
		{
			URL:           "https://example.com/articles/kafka-keys",
			Title:         "Choosing Kafka message keys",
			ContentText:   "Hash balancing and ordering guarantees per partition.",
			SourceKey:     "hn",
			SourceName:    "Hacker News",
			SourceBaseURL: "https://news.ycombinator.com",
			ExternalScore: score(73),
			SubmittedAt:   now.Add(-120 * time.Hour),
			Metadata:      map[string]any{"hn_id": 39117654},
			Embeddings:    [][]float32{demoEmbedding("kafka-keys", demoDims)},
		},
	}

	// The two oldest articles become reading history so similar_first has
	// something to work with.
	historyURLs := map[string]float64{
		"https://example.com/articles/viper-precedence": 1.0,
		"https://example.com/articles/kafka-keys":       0.5,
	}

	for _, sub := range subs {
		article, err := ing.Ingest(ctx, sub)
		if err != nil {
			return summary, fmt.Errorf("seeding %s: %w", sub.URL, err)
		}
		summary.Articles++

		if weight, ok := historyURLs[sub.URL]; ok {
			if _, err := ing.RecordHistory(ctx, article.ID, weight); err != nil {
				return summary, fmt.Errorf("seeding history for %s: %w", sub.URL, err)
			}
			summary.HistoryEntries++
		}
	}

	root, err := cs.Create(ctx, comments.CreateRequest{
		Category:   "blog",
		Slug:       "hello-peruse",
		Content:    "Nice writeup. Curious how the similar_first preset behaves with a cold history.",
		AuthorName: "demo-reader",
	}, nil)
	if err != nil {
		return summary, fmt.Errorf("seeding root comment: %w", err)
	}
	summary.Comments++

	_, err = cs.Create(ctx, comments.CreateRequest{
		Category:   "blog",
		Slug:       "hello-peruse",
		ParentID:   &root.ID,
		Content:    "It falls back to the balanced blend until history exists.",
		AuthorName: "demo-author",
	}, nil)
	if err != nil {
		return summary, fmt.Errorf("seeding reply comment: %w", err)
	}
	summary.Comments++

	return summary, nil
}

// demoEmbedding derives a deterministic unit vector from a seed string so
// reseeding produces identical data.
func demoEmbedding(seed string, dims int) []float32 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	state := h.Sum64()

	embedding := make([]float32, dims)
	var norm float64
	for i := range embedding {
		// xorshift64
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		v := float64(state%2000)/1000 - 1
		embedding[i] = float32(v)
		norm += v * v
	}

	norm = math.Sqrt(norm)
	if norm == 0 {
		embedding[0] = 1
		return embedding
	}
	for i := range embedding {
		embedding[i] = float32(float64(embedding[i]) / norm)
	}

	return embedding
}
