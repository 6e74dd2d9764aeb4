// Package kafka publishes ingestion events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/perusehq/peruse/pkg/eventstream"
)

// Config holds the Kafka publisher settings.
type Config struct {
	Brokers []string
	Topic   string
}

// Publisher writes ingestion events to Kafka. Messages are keyed by
// article id so per-article ordering survives partitioning.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Kafka-backed eventstream publisher.
func NewPublisher(config Config) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(config.Brokers...),
			Topic:    config.Topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishArticleIngested writes one event to the topic.
func (p *Publisher) PublishArticleIngested(ctx context.Context, event *eventstream.ArticleIngestedEvent) error {
	if event == nil {
		return eventstream.ErrNilEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.ArticleID)),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("writing event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
