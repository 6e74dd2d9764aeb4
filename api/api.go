// Package api provides the HTTP surface over the feed and discussion
// engines: ranked feed pages, the live feed stream, and the comment tree
// endpoints the frontend consumes.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/identity"
)

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// StreamPollInterval is how often each feed stream connection checks
	// for newly ingested articles.
	StreamPollInterval time.Duration
}

// Server is the API server for the feed and discussion system.
type Server struct {
	config   Config
	ranker   *feed.Ranker
	notifier *feed.Notifier
	comments *comments.Service
	auth     *identity.Authenticator
	logger   *zap.Logger
	app      *fiber.App
}

// NewServer creates a new API server. The domain services are injected so
// they can be shared with other entry points.
func NewServer(
	config Config,
	ranker *feed.Ranker,
	notifier *feed.Notifier,
	commentService *comments.Service,
	auth *identity.Authenticator,
	logger *zap.Logger,
) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:   config,
		ranker:   ranker,
		notifier: notifier,
		comments: commentService,
		auth:     auth,
		logger:   logger,
		app:      app,
	}

	app.Use(s.withIdentity)

	app.Get("/ping", s.handlePing)
	app.Get("/feed", s.handleFeed)
	app.Get("/feed/stream", s.handleFeedStream)
	app.Get("/blog/:slug/comments", s.handleCommentTree)
	app.Post("/blog/:slug/comments", s.handleCreateComment)
	app.Patch("/blog/:slug/comments/:id", s.handleEditComment)
	app.Delete("/blog/:slug/comments/:id", s.handleDeleteComment)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}
