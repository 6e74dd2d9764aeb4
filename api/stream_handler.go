package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/feed"
)

// heartbeatInterval paces the SSE keep-alive comments. Besides keeping
// proxies from idling the connection out, the heartbeat is how a client
// disconnect is noticed between events: its failed write cancels the poll
// loop even when no articles are arriving.
const heartbeatInterval = 15 * time.Second

// streamEvents runs one feed stream connection. Events are written through
// an io.Pipe set as the response body stream: pw.Write blocks until
// fasthttp's chunked writer consumes the data, so each event reaches the
// socket immediately and a disconnected client surfaces as a write error.
func (s *Server) streamEvents(c *fiber.Ctx) error {
	pr, pw := io.Pipe()

	// The fiber context is not usable from the goroutines after the
	// handler returns; everything they need is captured here.
	ctx, cancel := context.WithCancel(context.Background())

	// Keep-alive writer. io.Pipe gates parallel writes, so it can share
	// pw with the event loop.
	go func() {
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := pw.Write([]byte(": keep-alive\n\n")); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	go func() {
		defer cancel()
		defer pw.Close()

		err := s.notifier.Run(ctx, func(event feed.Event) error {
			return writeSSE(pw, event)
		})
		if err != nil {
			s.logger.Warn("feed stream ended", zap.Error(err))
		}
	}()

	// Chunked transfer encoding with unknown size (-1); the client closing
	// the connection closes the pipe reader, which fails the next write.
	c.Context().Response.SetBodyStream(pr, -1)

	return nil
}

// writeSSE frames one event in SSE wire format.
func writeSSE(w io.Writer, event feed.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}

	return nil
}
