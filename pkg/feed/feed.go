// Package feed provides the article domain model and the multi-signal
// ranking engine over ingested articles.
package feed

import (
	"time"
)

// Article is an ingested article together with its per-source metadata rows.
// Articles are created on first ingestion of a URL and never duplicated; one
// article may carry metadata from multiple sources when content is
// cross-posted.
type Article struct {
	ID          int              `json:"id"`
	URL         string           `json:"url"`
	Title       string           `json:"title"`
	ContentText string           `json:"content_text,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Sources     []SourceMetadata `json:"sources"`
}

// SubmittedAt returns the most recent source submission time for the
// article, or the zero time when no source row carries one.
func (a *Article) SubmittedAt() time.Time {
	var latest time.Time
	for _, s := range a.Sources {
		if s.SubmittedAt.After(latest) {
			latest = s.SubmittedAt
		}
	}
	return latest
}

// MaxExternalScore returns the highest external score across the article's
// source rows. The second return value is false when no source carries a
// score.
func (a *Article) MaxExternalScore() (float64, bool) {
	var best float64
	found := false
	for _, s := range a.Sources {
		if s.ExternalScore == nil {
			continue
		}
		if !found || *s.ExternalScore > best {
			best = *s.ExternalScore
			found = true
		}
	}
	return best, found
}

// SourceMetadata is one source's view of an article: its external score,
// the source's original submission time (distinct from ingestion time), and
// an opaque metadata envelope.
type SourceMetadata struct {
	SourceKey     string           `json:"source_key"`
	SourceName    string           `json:"source_name,omitempty"`
	ExternalScore *float64         `json:"external_score,omitempty"`
	SubmittedAt   time.Time        `json:"submitted_at"`
	Envelope      MetadataEnvelope `json:"metadata,omitempty"`
}

// Source is static reference data describing an ingestion source.
type Source struct {
	ID      int    `json:"id"`
	Key     string `json:"key"`
	Name    string `json:"name"`
	BaseURL string `json:"base_url,omitempty"`
}

// Chunk is a fixed-dimension embedding vector representing a segment of an
// article's content. An article may have multiple chunks; similarity is
// computed per chunk and aggregated per article.
type Chunk struct {
	ID        string    `json:"id"`
	ArticleID int       `json:"article_id"`
	Embedding []float32 `json:"embedding"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is a weighted record of a consumed article. It is used only
// as similarity-query input and is never exposed directly.
type HistoryEntry struct {
	ID        int       `json:"id"`
	ArticleID int       `json:"article_id"`
	Weight    float64   `json:"weight"`
	AddedAt   time.Time `json:"added_at"`
}

// FeedItem is one entry of a ranked feed page as served to clients.
type FeedItem struct {
	ID              int          `json:"id"`
	Title           string       `json:"title"`
	URL             string       `json:"url"`
	Score           float64      `json:"score"`
	SimilarityScore *float64     `json:"similarity_score,omitempty"`
	SubmittedAt     *time.Time   `json:"submitted_at,omitempty"`
	Sources         []FeedSource `json:"sources"`
}

// FeedSource is the per-source slice of a FeedItem.
type FeedSource struct {
	Key        string   `json:"key"`
	Score      *float64 `json:"score,omitempty"`
	ExternalID string   `json:"external_id,omitempty"`
}

// Page is one ranked feed page. HasMore is implicit: a page shorter than the
// requested limit is the last one.
type Page struct {
	Items []FeedItem `json:"items"`
}
