// Package watchcmder provides the watch command for following the feed
// change stream from a terminal.
package watchcmder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/logger"
	"github.com/perusehq/peruse/pkg/sse"
)

const watchLongDesc string = `Follow the feed change stream of a running Peruse server.

Connects to the server's SSE endpoint and prints a line whenever new
articles are ingested. Useful for checking that ingestion is flowing
without opening the frontend.

Examples:
  peruse watch
  peruse watch --api-url http://feeds.internal:8080`

type watchCommander struct {
	apiURL string
	debug  bool
	logger *zap.Logger
}

func NewWatchCmd() *cobra.Command {
	cmder := &watchCommander{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the feed change stream",
		Long:  watchLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cmder.apiURL, "api-url", "http://localhost:8080", "Base URL of the Peruse API server")

	return cmd
}

func (c *watchCommander) run(ctx context.Context) error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	target := c.apiURL + "/feed/stream"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("building stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, target)
	}

	c.logger.Info("watching feed stream", zap.String("target", target))

	reader := sse.NewReader(resp.Body)
	for {
		event, err := reader.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading stream: %w", err)
		}
		if event == nil {
			c.logger.Info("stream closed by server")
			return nil
		}

		var parsed feed.Event
		if err := json.Unmarshal([]byte(event.Data), &parsed); err != nil {
			c.logger.Warn("skipping unparseable event", zap.String("data", event.Data))
			continue
		}

		c.logger.Info("new entries available",
			zap.Int("count", parsed.Data.Count),
			zap.String("type", parsed.Type),
		)
	}
}
