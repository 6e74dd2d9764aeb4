package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/perusehq/peruse/pkg/feed"
)

const (
	defaultFeedLimit = 30
	maxFeedLimit     = 100
)

// handleFeed handles GET /feed requests.
// Query parameters:
//   - offset (optional, default 0): pagination offset over the ranked order
//   - limit (optional, default 30, max 100): page size
//   - source (optional, default "all"): source key filter
//   - ranking (optional, default "balanced"): ranking preset
func (s *Server) handleFeed(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", defaultFeedLimit)
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	preset, err := feed.ParsePreset(c.Query("ranking"))
	if err != nil {
		return s.respondError(c, err)
	}

	q := feed.Query{
		Offset:        offset,
		Limit:         limit,
		Source:        c.Query("source", feed.SourceAll),
		Preset:        preset,
		Authenticated: viewer(c) != nil,
	}

	page, err := s.ranker.Rank(c.Context(), q)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(page)
}

// handleFeedStream handles GET /feed/stream: a long-lived SSE connection
// pushing NewEntries counts as articles arrive.
func (s *Server) handleFeedStream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	return s.streamEvents(c)
}
