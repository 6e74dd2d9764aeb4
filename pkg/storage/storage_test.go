package storage_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/perusehq/peruse/pkg/storage"
)

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storage Suite")
}

var _ = Describe("ErrNotFound", func() {
	It("names the entity and key", func() {
		err := storage.ErrNotFound{Entity: "article", Key: "42"}
		Expect(err.Error()).To(Equal("article not found: 42"))
	})

	It("degrades gracefully without entity or key", func() {
		Expect(storage.ErrNotFound{}.Error()).To(Equal("record not found"))
		Expect(storage.ErrNotFound{Entity: "post"}.Error()).To(Equal("post not found"))
	})

	It("is detected through wrapping", func() {
		err := fmt.Errorf("looking up: %w", storage.ErrNotFound{Entity: "source", Key: "hn"})
		Expect(storage.IsNotFound(err)).To(BeTrue())
		Expect(storage.IsNotFound(errors.New("other"))).To(BeFalse())
		Expect(storage.IsNotFound(nil)).To(BeFalse())
	})
})

var _ = Describe("WithRetry", func() {
	var config storage.RetryConfig

	BeforeEach(func() {
		config = storage.RetryConfig{Attempts: 3, Backoff: time.Millisecond}
	})

	It("returns immediately on success", func() {
		calls := 0
		err := storage.WithRetry(context.Background(), config, func(context.Context) error {
			calls++
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(1))
	})

	It("retries transient failures up to the attempt budget", func() {
		calls := 0
		transient := errors.New("connection reset")
		err := storage.WithRetry(context.Background(), config, func(context.Context) error {
			calls++
			return transient
		})
		Expect(err).To(MatchError(transient))
		Expect(calls).To(Equal(3))
	})

	It("succeeds when a retry passes", func() {
		calls := 0
		err := storage.WithRetry(context.Background(), config, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("busy")
			}
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(3))
	})

	It("surfaces not-found immediately", func() {
		calls := 0
		err := storage.WithRetry(context.Background(), config, func(context.Context) error {
			calls++
			return storage.ErrNotFound{Entity: "comment", Key: "9"}
		})
		Expect(storage.IsNotFound(err)).To(BeTrue())
		Expect(calls).To(Equal(1))
	})

	It("surfaces context cancellation immediately", func() {
		calls := 0
		err := storage.WithRetry(context.Background(), config, func(context.Context) error {
			calls++
			return context.Canceled
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(calls).To(Equal(1))
	})

	It("stops waiting when the context is cancelled between attempts", func() {
		ctx, cancel := context.WithCancel(context.Background())
		slow := storage.RetryConfig{Attempts: 5, Backoff: time.Hour}

		var calls atomic.Int32
		done := make(chan error, 1)
		go func() {
			done <- storage.WithRetry(ctx, slow, func(context.Context) error {
				calls.Add(1)
				return errors.New("flaky")
			})
		}()

		Eventually(func() int32 { return calls.Load() }).Should(Equal(int32(1)))
		cancel()
		Eventually(done).Should(Receive(MatchError(context.Canceled)))
	})

	It("treats a non-positive attempt budget as a single try", func() {
		calls := 0
		err := storage.WithRetry(context.Background(), storage.RetryConfig{}, func(context.Context) error {
			calls++
			return errors.New("nope")
		})
		Expect(err).To(HaveOccurred())
		Expect(calls).To(Equal(1))
	})
})
