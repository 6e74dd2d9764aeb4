package feed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// EventTypeNewEntries names the only event the feed stream emits.
const EventTypeNewEntries = "NewEntries"

// Event is one message pushed over a feed stream connection.
type Event struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

// EventData carries the event payload.
type EventData struct {
	Count int `json:"count"`
}

// Notifier drives the per-connection poll loop behind the feed stream.
// Each connection gets its own watermark, taken at connection start, so
// counts cover exactly the articles ingested since the client connected.
type Notifier struct {
	articles ArticleStore
	interval time.Duration
	logger   *zap.Logger
}

// NewNotifier creates a notifier polling the article store at the given
// interval.
func NewNotifier(articles ArticleStore, interval time.Duration, logger *zap.Logger) *Notifier {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &Notifier{
		articles: articles,
		interval: interval,
		logger:   logger,
	}
}

// Run serves one stream connection: it polls for articles ingested after
// the connection-start watermark and calls emit for each non-zero delta.
// Transient fetch failures are logged and retried on the next tick; the
// loop exits when ctx is cancelled or emit reports the client is gone.
func (n *Notifier) Run(ctx context.Context, emit func(Event) error) error {
	watermark, err := n.articles.MaxArticleID(ctx)
	if err != nil {
		return fmt.Errorf("taking stream watermark: %w", err)
	}

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		// Read the max id before counting so anything ingested between
		// the two queries stays above the advanced watermark.
		newest, err := n.articles.MaxArticleID(ctx)
		if err != nil {
			n.logger.Warn("stream poll failed", zap.Error(err))
			continue
		}
		if newest <= watermark {
			continue
		}

		count, err := n.articles.CountArticlesAfter(ctx, watermark, newest)
		if err != nil {
			n.logger.Warn("stream poll failed", zap.Error(err))
			continue
		}
		if count == 0 {
			continue
		}

		event := Event{
			Type: EventTypeNewEntries,
			Data: EventData{Count: count},
		}
		if err := emit(event); err != nil {
			// The client disconnected; tearing down is not an error.
			return nil
		}

		watermark = newest
	}
}
