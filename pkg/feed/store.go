package feed

import "context"

// CandidateQuery bounds the candidate window the ranker scores.
type CandidateQuery struct {
	// SourceKey restricts candidates to articles carrying metadata from the
	// given source. Empty means all sources.
	SourceKey string

	// Limit caps the window, newest-first by ingestion order. The ranker
	// orders the window itself; the store only bounds it.
	Limit int
}

// ArticleStore is the read surface the ranking engine and notifier need
// over ingested articles.
type ArticleStore interface {
	// ListCandidates returns up to q.Limit articles with their source
	// metadata eager-loaded, newest-first, excluding articles already in
	// the reading history.
	ListCandidates(ctx context.Context, q CandidateQuery) ([]*Article, error)

	// GetSourceByKey resolves a source by its stable key. Returns
	// storage.ErrNotFound when the key is unregistered.
	GetSourceByKey(ctx context.Context, key string) (*Source, error)

	// MaxArticleID returns the highest article id, or 0 for an empty store.
	// Article ids are monotonic with ingestion order, so this doubles as
	// the stream watermark.
	MaxArticleID(ctx context.Context) (int, error)

	// CountArticlesAfter returns how many articles have an id in
	// (after, upTo]. Bounding the count to a max id read beforehand keeps
	// an article ingested mid-poll countable on the next tick.
	CountArticlesAfter(ctx context.Context, after, upTo int) (int, error)
}

// HistoryStore is the read surface over the weighted reading history.
type HistoryStore interface {
	// ListHistory returns all history entries. Used only as a
	// similarity-query seed.
	ListHistory(ctx context.Context) ([]HistoryEntry, error)
}

// ChunkStore loads stored embedding chunks for history articles so the
// ranker can build the history centroid.
type ChunkStore interface {
	// ChunksByArticles returns all chunks belonging to the given articles.
	ChunksByArticles(ctx context.Context, articleIDs []int) ([]Chunk, error)
}
