// Package backfill rebuilds the vector index from the relational chunk
// table. The relational store is the source of truth for chunk embeddings;
// the vector index is a mirror that can be dropped and repopulated, e.g.
// after switching vector store providers or changing collections.
package backfill

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/vector"
)

// DefaultBatchSize bounds how many chunks are read and mirrored per round
// trip.
const DefaultBatchSize = 256

// Source is the slice of storage the reindexer reads.
type Source interface {
	// ListChunks pages through every stored chunk in id order.
	ListChunks(ctx context.Context, offset, limit int) ([]feed.Chunk, error)
}

// Options configures reindex behavior.
type Options struct {
	// BatchSize is the number of chunks per read/write batch. Zero means
	// DefaultBatchSize.
	BatchSize int

	// DryRun scans and counts without writing to the vector index.
	DryRun bool
}

// Reindexer mirrors relational chunks into a vector index.
type Reindexer struct {
	source  Source
	vectors vector.Driver
	options Options
	logger  *zap.Logger
}

// NewReindexer creates a Reindexer reading chunks from source and writing
// them to vectors.
func NewReindexer(source Source, vectors vector.Driver, opts Options, logger *zap.Logger) *Reindexer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	return &Reindexer{
		source:  source,
		vectors: vectors,
		options: opts,
		logger:  logger,
	}
}

// Run walks the chunk table in batches and upserts every chunk with an
// embedding into the vector index. Chunks without embeddings are counted
// and skipped.
func (r *Reindexer) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	offset := 0
	for {
		chunks, err := r.source.ListChunks(ctx, offset, r.options.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("listing chunks at offset %d: %w", offset, err)
		}
		if len(chunks) == 0 {
			break
		}
		offset += len(chunks)
		result.Scanned += len(chunks)

		docs := make([]vector.Document, 0, len(chunks))
		for _, ch := range chunks {
			if len(ch.Embedding) == 0 {
				result.Skipped++
				continue
			}
			docs = append(docs, vector.Document{
				ID:        ch.ID,
				ArticleID: ch.ArticleID,
				Embedding: ch.Embedding,
			})
		}

		if len(docs) == 0 {
			continue
		}

		if !r.options.DryRun {
			if err := r.vectors.Add(ctx, docs); err != nil {
				return nil, fmt.Errorf("mirroring batch at offset %d: %w", offset, err)
			}
		}

		result.Mirrored += len(docs)
		result.Batches++

		r.logger.Debug("mirrored chunk batch",
			zap.Int("batch_size", len(docs)),
			zap.Int("scanned", result.Scanned),
		)
	}

	return result, nil
}
