package kafka_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/eventstream"
	"github.com/perusehq/peruse/pkg/eventstream/kafka"
)

func TestKafka(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Kafka Suite")
}

var _ = Describe("Publisher", func() {
	It("rejects a nil event before touching the wire", func() {
		p := kafka.NewPublisher(kafka.Config{
			Brokers: []string{"localhost:9092"},
			Topic:   "peruse.articles",
		})
		defer p.Close()

		err := p.PublishArticleIngested(context.Background(), nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})
})
