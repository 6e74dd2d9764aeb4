package feed_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/feed"
)

// streamStore is a controllable ArticleStore for notifier tests.
type streamStore struct {
	mu       sync.Mutex
	maxID    int
	countErr error

	// countHook runs inside CountArticlesAfter, under the lock, to wedge
	// an ingest between the max-id read and the count.
	countHook func()
}

func (s *streamStore) ingest(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxID += n
}

func (s *streamStore) failWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countErr = err
}

func (s *streamStore) ListCandidates(context.Context, feed.CandidateQuery) ([]*feed.Article, error) {
	return nil, nil
}

func (s *streamStore) GetSourceByKey(context.Context, string) (*feed.Source, error) {
	return nil, nil
}

func (s *streamStore) MaxArticleID(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxID, nil
}

func (s *streamStore) CountArticlesAfter(_ context.Context, after, upTo int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	if s.countHook != nil {
		s.countHook()
	}
	count := upTo - after
	if count < 0 {
		count = 0
	}
	return count, nil
}

var _ = Describe("Notifier", func() {
	var (
		store    *streamStore
		notifier *feed.Notifier
	)

	BeforeEach(func() {
		store = &streamStore{maxID: 5}
		notifier = feed.NewNotifier(store, 5*time.Millisecond, zap.NewNop())
	})

	collect := func(ctx context.Context) (<-chan feed.Event, <-chan error) {
		events := make(chan feed.Event, 16)
		done := make(chan error, 1)
		go func() {
			done <- notifier.Run(ctx, func(e feed.Event) error {
				events <- e
				return nil
			})
		}()
		return events, done
	}

	It("emits a NewEntries count for articles past the connect watermark", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, _ := collect(ctx)

		store.ingest(3)

		var e feed.Event
		Eventually(events).Should(Receive(&e))
		Expect(e.Type).To(Equal(feed.EventTypeNewEntries))
		Expect(e.Data.Count).To(Equal(3))
	})

	It("advances the watermark after each emit", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, _ := collect(ctx)

		store.ingest(2)
		var first feed.Event
		Eventually(events).Should(Receive(&first))
		Expect(first.Data.Count).To(Equal(2))

		store.ingest(1)
		var second feed.Event
		Eventually(events).Should(Receive(&second))
		Expect(second.Data.Count).To(Equal(1))
	})

	It("counts an article ingested mid-poll on the following tick", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Sneak one article in after the poll has read the max id but
		// before it counts. Runs under the store lock, so it mutates
		// maxID directly instead of calling ingest.
		fired := false
		store.countHook = func() {
			if fired {
				return
			}
			fired = true
			store.maxID++
		}

		events, _ := collect(ctx)

		store.ingest(2)

		var first feed.Event
		Eventually(events).Should(Receive(&first))
		Expect(first.Data.Count).To(Equal(2))

		// The sneaked-in article sits above the advanced watermark.
		var second feed.Event
		Eventually(events).Should(Receive(&second))
		Expect(second.Data.Count).To(Equal(1))
	})

	It("stays silent while nothing is ingested", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, _ := collect(ctx)
		Consistently(events, 50*time.Millisecond).ShouldNot(Receive())
	})

	It("stops cleanly on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())

		_, done := collect(ctx)
		cancel()

		Eventually(done).Should(Receive(BeNil()))
	})

	It("stops cleanly when emit reports the client is gone", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- notifier.Run(ctx, func(feed.Event) error {
				return errors.New("client gone")
			})
		}()

		store.ingest(1)
		Eventually(done).Should(Receive(BeNil()))
	})

	It("retries after a transient poll failure", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store.failWith(errors.New("db down"))
		events, _ := collect(ctx)

		store.ingest(2)
		Consistently(events, 30*time.Millisecond).ShouldNot(Receive())

		store.failWith(nil)
		var e feed.Event
		Eventually(events).Should(Receive(&e))
		Expect(e.Data.Count).To(Equal(2))
	})
})
