package eventstream

import "context"

// Publisher publishes ingestion events to an event stream backend.
type Publisher interface {
	PublishArticleIngested(ctx context.Context, event *ArticleIngestedEvent) error
	Close() error
}
