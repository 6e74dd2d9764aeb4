package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/perusehq/peruse/pkg/comments"
)

// blogCategory scopes the /blog/:slug routes; other categories would get
// their own route groups.
const blogCategory = "blog"

// handleCommentTree handles GET /blog/:slug/comments requests.
// Query parameters:
//   - sort (optional, default "best"): sibling ordering, "best" or "new"
//   - page_offset (optional, default 0): offset over root comments
//   - page_size (optional, default 0 = all): root comments per page
func (s *Server) handleCommentTree(c *fiber.Ctx) error {
	sort, err := comments.ParseSort(c.Query("sort"))
	if err != nil {
		return s.respondError(c, err)
	}

	tree, err := s.comments.Thread(c.Context(), comments.ThreadQuery{
		Category: blogCategory,
		Slug:     c.Params("slug"),
		Sort:     sort,
		Offset:   c.QueryInt("page_offset", 0),
		Size:     c.QueryInt("page_size", 0),
	}, viewer(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(tree)
}

// createCommentRequest is the POST body for a new comment.
type createCommentRequest struct {
	Content     string `json:"content"`
	ParentID    *int   `json:"parent_id"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

// handleCreateComment handles POST /blog/:slug/comments. Auth is optional:
// signed-in comments bind to the identity, anonymous ones require an
// author name in the body.
func (s *Server) handleCreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Msg:    "malformed request body",
			Reason: "validation",
		})
	}

	created, err := s.comments.Create(c.Context(), comments.CreateRequest{
		Category:    blogCategory,
		Slug:        c.Params("slug"),
		ParentID:    req.ParentID,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		AuthorIP:    c.IP(),
	}, viewer(c))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// editCommentRequest is the PATCH body for a comment edit.
type editCommentRequest struct {
	Content string `json:"content"`
}

// handleEditComment handles PATCH /blog/:slug/comments/:id. Owner only.
func (s *Server) handleEditComment(c *fiber.Ctx) error {
	ident, errResp := s.requireViewer(c)
	if ident == nil {
		return errResp
	}

	commentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Msg:    "comment id must be an integer",
			Reason: "validation",
		})
	}

	var req editCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Msg:    "malformed request body",
			Reason: "validation",
		})
	}

	updated, err := s.comments.Edit(c.Context(), commentID, req.Content, ident)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(updated)
}

// handleDeleteComment handles DELETE /blog/:slug/comments/:id. Owner or
// site owner; the delete cascades to all descendants.
func (s *Server) handleDeleteComment(c *fiber.Ctx) error {
	ident, errResp := s.requireViewer(c)
	if ident == nil {
		return errResp
	}

	commentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Msg:    "comment id must be an integer",
			Reason: "validation",
		})
	}

	if err := s.comments.Delete(c.Context(), commentID, ident); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
