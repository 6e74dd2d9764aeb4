package entdriver

import (
	"context"
	"fmt"

	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/storage/ent"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlechunk"
	"github.com/perusehq/peruse/pkg/storage/ent/articlemetadata"
	"github.com/perusehq/peruse/pkg/storage/ent/historyentry"
	"github.com/perusehq/peruse/pkg/storage/ent/source"
)

// UpsertArticle creates the article on first sight of a URL, or returns
// the existing row unchanged. The second return value is true when the
// article was newly created.
func (ed *EntDriver) UpsertArticle(ctx context.Context, url, title, contentText string) (*feed.Article, bool, error) {
	existing, err := ed.Client.Article.Query().
		Where(article.URL(url)).
		Only(ctx)
	if err == nil {
		return entArticleToFeedArticle(existing), false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check article existence: %w", err)
	}

	create := ed.Client.Article.Create().
		SetURL(url).
		SetTitle(title)
	if contentText != "" {
		create.SetContentText(contentText)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create article: %w", err)
	}

	return entArticleToFeedArticle(created), true, nil
}

// EnsureSource registers a source key on first sight.
func (ed *EntDriver) EnsureSource(ctx context.Context, key, name, baseURL string) (*feed.Source, error) {
	existing, err := ed.Client.Source.Query().
		Where(source.Key(key)).
		Only(ctx)
	if err == nil {
		return entSourceToFeedSource(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check source existence: %w", err)
	}

	if name == "" {
		name = key
	}
	create := ed.Client.Source.Create().
		SetKey(key).
		SetName(name)
	if baseURL != "" {
		create.SetBaseURL(baseURL)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	return entSourceToFeedSource(created), nil
}

// UpsertMetadata creates or refreshes the (article, source) metadata row.
func (ed *EntDriver) UpsertMetadata(ctx context.Context, articleID, sourceID int, m feed.SourceMetadata) error {
	existing, err := ed.Client.ArticleMetadata.Query().
		Where(
			articlemetadata.ArticleID(articleID),
			articlemetadata.SourceID(sourceID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to check metadata existence: %w", err)
	}

	if ent.IsNotFound(err) {
		create := ed.Client.ArticleMetadata.Create().
			SetArticleID(articleID).
			SetSourceID(sourceID).
			SetNillableExternalScore(m.ExternalScore)
		if !m.SubmittedAt.IsZero() {
			create.SetSubmittedAt(m.SubmittedAt)
		}
		if raw := m.Envelope.AsMap(); raw != nil {
			create.SetMetadata(raw)
		}

		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create metadata: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetNillableExternalScore(m.ExternalScore)
	if !m.SubmittedAt.IsZero() {
		update.SetSubmittedAt(m.SubmittedAt)
	}
	if raw := m.Envelope.AsMap(); raw != nil {
		update.SetMetadata(raw)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// ReplaceChunks swaps an article's embedding chunks for the given set,
// reporting the removed chunk ids so callers can evict them elsewhere.
func (ed *EntDriver) ReplaceChunks(ctx context.Context, articleID int, chunks []feed.Chunk) ([]feed.Chunk, []string, error) {
	removed, err := ed.Client.ArticleChunk.Query().
		Where(articlechunk.ArticleID(articleID)).
		IDs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list old chunks: %w", err)
	}

	_, err = ed.Client.ArticleChunk.Delete().
		Where(articlechunk.ArticleID(articleID)).
		Exec(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to delete old chunks: %w", err)
	}

	builders := make([]*ent.ArticleChunkCreate, 0, len(chunks))
	for _, ch := range chunks {
		builders = append(builders, ed.Client.ArticleChunk.Create().
			SetID(ch.ID).
			SetArticleID(articleID).
			SetEmbedding(ch.Embedding))
	}

	rows, err := ed.Client.ArticleChunk.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create chunks: %w", err)
	}

	stored := make([]feed.Chunk, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, feed.Chunk{
			ID:        row.ID,
			ArticleID: row.ArticleID,
			Embedding: row.Embedding,
			CreatedAt: row.CreatedAt,
		})
	}

	return stored, removed, nil
}

// AddHistory records a weighted reading-history entry. History keeps one
// row per article, so a repeat visit updates the weight in place.
func (ed *EntDriver) AddHistory(ctx context.Context, articleID int, weight float64) (*feed.HistoryEntry, error) {
	existing, err := ed.Client.HistoryEntry.Query().
		Where(historyentry.ArticleID(articleID)).
		Only(ctx)
	if err == nil {
		row, err := existing.Update().
			SetWeight(weight).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update history entry: %w", err)
		}

		return &feed.HistoryEntry{
			ID:        row.ID,
			ArticleID: row.ArticleID,
			Weight:    row.Weight,
			AddedAt:   row.AddedAt,
		}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check history entry: %w", err)
	}

	row, err := ed.Client.HistoryEntry.Create().
		SetArticleID(articleID).
		SetWeight(weight).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create history entry: %w", err)
	}

	return &feed.HistoryEntry{
		ID:        row.ID,
		ArticleID: row.ArticleID,
		Weight:    row.Weight,
		AddedAt:   row.AddedAt,
	}, nil
}
