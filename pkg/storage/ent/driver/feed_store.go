package entdriver

import (
	"context"
	"fmt"

	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/ent"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlechunk"
	"github.com/perusehq/peruse/pkg/storage/ent/articlemetadata"
	"github.com/perusehq/peruse/pkg/storage/ent/source"
)

// ListCandidates returns up to q.Limit articles newest-first with their
// metadata and source rows eager-loaded, excluding articles already in the
// reading history.
func (ed *EntDriver) ListCandidates(ctx context.Context, q feed.CandidateQuery) ([]*feed.Article, error) {
	query := ed.Client.Article.Query().
		Where(article.Not(article.HasHistory())).
		WithMetadata(func(mq *ent.ArticleMetadataQuery) {
			mq.WithSource()
		}).
		Order(ent.Desc(article.FieldID))

	if q.SourceKey != "" {
		query = query.Where(article.HasMetadataWith(
			articlemetadata.HasSourceWith(source.Key(q.SourceKey)),
		))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	entArticles, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	articles := make([]*feed.Article, 0, len(entArticles))
	for _, ea := range entArticles {
		articles = append(articles, entArticleToFeedArticle(ea))
	}

	return articles, nil
}

// GetSourceByKey resolves a registered source by its stable key.
func (ed *EntDriver) GetSourceByKey(ctx context.Context, key string) (*feed.Source, error) {
	es, err := ed.Client.Source.Query().
		Where(source.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "source", Key: key}
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return entSourceToFeedSource(es), nil
}

// MaxArticleID returns the highest article id, or 0 for an empty store.
func (ed *EntDriver) MaxArticleID(ctx context.Context) (int, error) {
	id, err := ed.Client.Article.Query().
		Order(ent.Desc(article.FieldID)).
		FirstID(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query max article id: %w", err)
	}

	return id, nil
}

// CountArticlesAfter counts articles with an id in (after, upTo].
func (ed *EntDriver) CountArticlesAfter(ctx context.Context, after, upTo int) (int, error) {
	count, err := ed.Client.Article.Query().
		Where(
			article.IDGT(after),
			article.IDLTE(upTo),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count new articles: %w", err)
	}

	return count, nil
}

// ListHistory returns all reading-history entries.
func (ed *EntDriver) ListHistory(ctx context.Context) ([]feed.HistoryEntry, error) {
	rows, err := ed.Client.HistoryEntry.Query().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	entries := make([]feed.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, feed.HistoryEntry{
			ID:        row.ID,
			ArticleID: row.ArticleID,
			Weight:    row.Weight,
			AddedAt:   row.AddedAt,
		})
	}

	return entries, nil
}

// ChunksByArticles returns all embedding chunks belonging to the given
// articles.
func (ed *EntDriver) ChunksByArticles(ctx context.Context, articleIDs []int) ([]feed.Chunk, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	rows, err := ed.Client.ArticleChunk.Query().
		Where(articlechunk.ArticleIDIn(articleIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}

	chunks := make([]feed.Chunk, 0, len(rows))
	for _, row := range rows {
		chunks = append(chunks, feed.Chunk{
			ID:        row.ID,
			ArticleID: row.ArticleID,
			Embedding: row.Embedding,
			CreatedAt: row.CreatedAt,
		})
	}

	return chunks, nil
}

// ListChunks pages through every stored chunk in id order.
func (ed *EntDriver) ListChunks(ctx context.Context, offset, limit int) ([]feed.Chunk, error) {
	q := ed.Client.ArticleChunk.Query().
		Order(ent.Asc(articlechunk.FieldID)).
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks: %w", err)
	}

	chunks := make([]feed.Chunk, 0, len(rows))
	for _, row := range rows {
		chunks = append(chunks, feed.Chunk{
			ID:        row.ID,
			ArticleID: row.ArticleID,
			Embedding: row.Embedding,
			CreatedAt: row.CreatedAt,
		})
	}

	return chunks, nil
}

// Conversion helpers
func entArticleToFeedArticle(ea *ent.Article) *feed.Article {
	a := &feed.Article{
		ID:        ea.ID,
		URL:       ea.URL,
		Title:     ea.Title,
		CreatedAt: ea.CreatedAt,
		Sources:   make([]feed.SourceMetadata, 0, len(ea.Edges.Metadata)),
	}
	if ea.ContentText != nil {
		a.ContentText = *ea.ContentText
	}

	for _, em := range ea.Edges.Metadata {
		sm := feed.SourceMetadata{
			ExternalScore: em.ExternalScore,
		}
		if em.SubmittedAt != nil {
			sm.SubmittedAt = *em.SubmittedAt
		}
		if em.Edges.Source != nil {
			sm.SourceKey = em.Edges.Source.Key
			sm.SourceName = em.Edges.Source.Name
		}
		// Envelope contents were validated at ingestion; a row that fails
		// to parse now is surfaced as its raw map via Extra.
		env, err := feed.ParseEnvelope(em.Metadata)
		if err != nil {
			env = feed.MetadataEnvelope{Extra: em.Metadata}
		}
		sm.Envelope = env

		a.Sources = append(a.Sources, sm)
	}

	return a
}

func entSourceToFeedSource(es *ent.Source) *feed.Source {
	s := &feed.Source{
		ID:   es.ID,
		Key:  es.Key,
		Name: es.Name,
	}
	if es.BaseURL != nil {
		s.BaseURL = *es.BaseURL
	}

	return s
}
