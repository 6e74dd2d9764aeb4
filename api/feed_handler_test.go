package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/ingest"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/inmemory"
	vectorinmemory "github.com/perusehq/peruse/pkg/vector/inmemory"
)

// newTestServer wires a full server over the in-memory backends, returning
// the server plus the pieces tests seed through.
func newTestServer() (*Server, *inmemory.Driver, *ingest.Service, *identity.Authenticator) {
	logger := zap.NewNop()
	driver := inmemory.NewDriver()
	vectors := vectorinmemory.NewDriver()

	ingestor := ingest.NewService(driver, vectors, nil, logger)
	ranker := feed.NewRanker(feed.DefaultConfig(), driver, driver, driver, vectors, logger)
	notifier := feed.NewNotifier(driver, 5*time.Millisecond, logger)
	commentService := comments.NewService(driver, storage.DefaultRetryConfig(), logger)
	auth := identity.NewAuthenticator(driver, storage.DefaultRetryConfig(), logger)

	server := NewServer(
		Config{ListenAddr: ":0", StreamPollInterval: 5 * time.Millisecond},
		ranker,
		notifier,
		commentService,
		auth,
		logger,
	)

	return server, driver, ingestor, auth
}

func decodeError(resp *http.Response) ErrorResponse {
	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	var out ErrorResponse
	Expect(json.Unmarshal(body, &out)).To(Succeed())
	return out
}

var _ = Describe("handleFeed", func() {
	var (
		server   *Server
		ingestor *ingest.Service
		ctx      context.Context
	)

	submit := func(slug, sourceKey string) {
		_, err := ingestor.Ingest(ctx, ingest.Submission{
			URL:       "https://example.com/" + slug,
			Title:     slug,
			SourceKey: sourceKey,
		})
		Expect(err).NotTo(HaveOccurred())
	}

	getPage := func(target string) (*http.Response, feed.Page) {
		req, err := http.NewRequest(http.MethodGet, target, nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())

		var page feed.Page
		if resp.StatusCode == http.StatusOK {
			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(json.Unmarshal(body, &page)).To(Succeed())
		}
		return resp, page
	}

	BeforeEach(func() {
		ctx = context.Background()
		server, _, ingestor, _ = newTestServer()

		submit("first", "hn")
		submit("second", "hn")
		submit("third", "lobsters")
	})

	It("returns a ranked page", func() {
		resp, page := getPage("/feed")
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
		Expect(page.Items).To(HaveLen(3))
	})

	It("orders newer_first by ingestion order", func() {
		resp, page := getPage("/feed?ranking=newer_first")
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
		Expect(page.Items).To(HaveLen(3))
		Expect(page.Items[0].Title).To(Equal("third"))
		Expect(page.Items[2].Title).To(Equal("first"))
	})

	It("filters by source", func() {
		resp, page := getPage("/feed?source=lobsters")
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
		Expect(page.Items).To(HaveLen(1))
		Expect(page.Items[0].Title).To(Equal("third"))
	})

	It("paginates over the ranked order", func() {
		resp, page := getPage("/feed?ranking=newer_first&offset=1&limit=1")
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
		Expect(page.Items).To(HaveLen(1))
		Expect(page.Items[0].Title).To(Equal("second"))
	})

	It("rejects an unknown ranking preset", func() {
		resp, _ := getPage("/feed?ranking=hot")
		Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))

		body := decodeError(resp)
		Expect(body.Reason).To(Equal("validation"))
		Expect(body.Msg).To(ContainSubstring("hot"))
	})

	It("rejects an unknown source", func() {
		resp, _ := getPage("/feed?source=nope")
		Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		Expect(decodeError(resp).Reason).To(Equal("validation"))
	})

	It("rejects a negative offset", func() {
		resp, _ := getPage("/feed?offset=-1")
		Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		Expect(decodeError(resp).Reason).To(Equal("validation"))
	})

	It("ignores a stale auth cookie", func() {
		req, err := http.NewRequest(http.MethodGet, "/feed", nil)
		Expect(err).NotTo(HaveOccurred())
		req.AddCookie(&http.Cookie{Name: authCookie, Value: "prs_expiredorbogus"})

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))
	})
})

var _ = Describe("handlePing", func() {
	It("responds pong", func() {
		server, _, _, _ := newTestServer()

		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		Expect(err).NotTo(HaveOccurred())

		resp, err := server.app.Test(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(Equal(`"pong"`))
	})
})
