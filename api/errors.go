package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/storage"
)

// ErrorResponse is the error body shape every endpoint returns. Msg is a
// stable human-readable string; Reason is an optional machine-readable
// code. Internal detail never appears here.
type ErrorResponse struct {
	Error  string `json:"error,omitempty"`
	Msg    string `json:"msg"`
	Reason string `json:"reason,omitempty"`
}

// respondError maps a domain error to its HTTP shape. Validation and
// ownership failures surface verbatim; anything unrecognized is a generic
// 500 so internals never leak.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, feed.ErrInvalidPreset),
		errors.Is(err, feed.ErrInvalidSource),
		errors.Is(err, feed.ErrInvalidPage),
		errors.Is(err, comments.ErrInvalidSort),
		errors.Is(err, comments.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Msg:    err.Error(),
			Reason: "validation",
		})

	case errors.Is(err, comments.ErrInvalidParent):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Msg:    err.Error(),
			Reason: "invalid_parent",
		})

	case storage.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Msg:    err.Error(),
			Reason: "not_found",
		})

	case errors.Is(err, comments.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
			Msg:    comments.ErrForbidden.Error(),
			Reason: "forbidden",
		})

	default:
		s.logger.Error("request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Msg:    "internal error",
			Reason: "internal",
		})
	}
}
