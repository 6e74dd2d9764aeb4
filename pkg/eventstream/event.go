package eventstream

import "time"

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeArticleIngested is emitted after an article (or a new
	// source row for an existing article) is persisted.
	EventTypeArticleIngested = "peruse.article.ingested"
)

// ArticleIngestedEvent is a transport-neutral event payload for an
// ingested article. Downstream consumers (index rebuilders, digests) key
// on ArticleID.
type ArticleIngestedEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EmittedAt     time.Time `json:"emitted_at"`

	ArticleID  int    `json:"article_id"`
	URL        string `json:"url"`
	SourceKey  string `json:"source_key"`
	NewArticle bool   `json:"new_article"`
	ChunkCount int    `json:"chunk_count"`
}
