// Package ingest persists articles arriving from external scrapers. The
// scrapers themselves live outside this system; they hand over finished
// submissions (content plus precomputed embeddings) and this service makes
// them durable, mirrors chunks into the vector index, and announces them.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/eventstream"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/utils"
	"github.com/perusehq/peruse/pkg/vector"
)

// Store is the persistence surface ingestion needs. The storage backends
// implement it.
type Store interface {
	// UpsertArticle creates the article on first sight of a URL, or
	// returns the existing one. The second return value is true when the
	// article was newly created.
	UpsertArticle(ctx context.Context, url, title, contentText string) (*feed.Article, bool, error)

	// EnsureSource registers a source key on first sight.
	EnsureSource(ctx context.Context, key, name, baseURL string) (*feed.Source, error)

	// UpsertMetadata creates or refreshes the (article, source) metadata
	// row.
	UpsertMetadata(ctx context.Context, articleID, sourceID int, m feed.SourceMetadata) error

	// ReplaceChunks swaps an article's embedding chunks for the given
	// set, returning the stored chunks and the ids of the removed ones.
	ReplaceChunks(ctx context.Context, articleID int, chunks []feed.Chunk) ([]feed.Chunk, []string, error)

	// AddHistory records a weighted reading-history entry, one row per
	// article; a repeat visit updates the weight.
	AddHistory(ctx context.Context, articleID int, weight float64) (*feed.HistoryEntry, error)
}

// Submission is one article handed over by an external scraper.
type Submission struct {
	URL         string
	Title       string
	ContentText string

	SourceKey     string
	SourceName    string
	SourceBaseURL string

	ExternalScore *float64
	SubmittedAt   time.Time
	Metadata      map[string]any

	// Embeddings are the precomputed chunk vectors for the article body.
	// Empty when the submission has no extractable content.
	Embeddings [][]float32
}

// Service persists submissions and fans out the side effects: vector index
// mirror and ingestion event.
type Service struct {
	store     Store
	vectors   vector.Driver
	publisher eventstream.Publisher
	logger    *zap.Logger
}

// NewService creates an ingestion service. The vector driver and publisher
// may be nil when those side effects are disabled.
func NewService(store Store, vectors vector.Driver, publisher eventstream.Publisher, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		vectors:   vectors,
		publisher: publisher,
		logger:    logger,
	}
}

// Ingest persists one submission: article upsert, source registration,
// metadata refresh, chunk replacement, vector mirror, event. The article
// and metadata writes are authoritative; a vector or event failure is
// logged and does not roll them back.
func (s *Service) Ingest(ctx context.Context, sub Submission) (*feed.Article, error) {
	if sub.URL == "" {
		return nil, fmt.Errorf("submission has no url")
	}
	if sub.SourceKey == "" {
		return nil, fmt.Errorf("submission has no source key")
	}

	article, created, err := s.store.UpsertArticle(ctx, sub.URL, sub.Title, sub.ContentText)
	if err != nil {
		return nil, fmt.Errorf("upserting article: %w", err)
	}

	source, err := s.store.EnsureSource(ctx, sub.SourceKey, sub.SourceName, sub.SourceBaseURL)
	if err != nil {
		return nil, fmt.Errorf("registering source: %w", err)
	}

	envelope, err := feed.ParseEnvelope(sub.Metadata)
	if err != nil {
		return nil, fmt.Errorf("validating metadata: %w", err)
	}

	err = s.store.UpsertMetadata(ctx, article.ID, source.ID, feed.SourceMetadata{
		SourceKey:     source.Key,
		SourceName:    source.Name,
		ExternalScore: sub.ExternalScore,
		SubmittedAt:   sub.SubmittedAt,
		Envelope:      envelope,
	})
	if err != nil {
		return nil, fmt.Errorf("upserting metadata: %w", err)
	}

	var chunks []feed.Chunk
	if len(sub.Embeddings) > 0 {
		chunks = make([]feed.Chunk, 0, len(sub.Embeddings))
		for _, embedding := range sub.Embeddings {
			chunks = append(chunks, feed.Chunk{
				ID:        uuid.NewString(),
				ArticleID: article.ID,
				Embedding: embedding,
			})
		}

		var removed []string
		chunks, removed, err = s.store.ReplaceChunks(ctx, article.ID, chunks)
		if err != nil {
			return nil, fmt.Errorf("replacing chunks: %w", err)
		}

		s.mirrorChunks(ctx, chunks, removed)
	}

	s.publish(ctx, article, source.Key, created, len(chunks))

	s.logger.Info("article ingested",
		zap.Int("article_id", article.ID),
		zap.String("title", utils.Truncate(article.Title, 80)),
		zap.String("source", source.Key),
		zap.Bool("new", created),
		zap.Int("chunks", len(chunks)))

	return article, nil
}

// RecordHistory appends an article to the weighted reading history. It is
// called by the external activity-tracking collaborator.
func (s *Service) RecordHistory(ctx context.Context, articleID int, weight float64) (*feed.HistoryEntry, error) {
	entry, err := s.store.AddHistory(ctx, articleID, weight)
	if err != nil {
		return nil, fmt.Errorf("recording history: %w", err)
	}

	return entry, nil
}

func (s *Service) mirrorChunks(ctx context.Context, chunks []feed.Chunk, removed []string) {
	if s.vectors == nil {
		return
	}

	if len(removed) > 0 {
		if err := s.vectors.Delete(ctx, removed); err != nil {
			s.logger.Warn("could not drop replaced chunks from vector index",
				zap.Int("chunks", len(removed)),
				zap.Error(err))
		}
	}

	docs := make([]vector.Document, 0, len(chunks))
	for _, ch := range chunks {
		docs = append(docs, vector.Document{
			ID:        ch.ID,
			ArticleID: ch.ArticleID,
			Embedding: ch.Embedding,
		})
	}

	if err := s.vectors.Add(ctx, docs); err != nil {
		s.logger.Warn("could not mirror chunks to vector index",
			zap.Int("chunks", len(docs)),
			zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, article *feed.Article, sourceKey string, created bool, chunkCount int) {
	if s.publisher == nil {
		return
	}

	event := &eventstream.ArticleIngestedEvent{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventType:     eventstream.EventTypeArticleIngested,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		ArticleID:     article.ID,
		URL:           article.URL,
		SourceKey:     sourceKey,
		NewArticle:    created,
		ChunkCount:    chunkCount,
	}
	if err := s.publisher.PublishArticleIngested(ctx, event); err != nil {
		s.logger.Warn("could not publish ingestion event", zap.Error(err))
	}
}
