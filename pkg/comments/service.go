package comments

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage"
)

const (
	maxAuthorNameLen = 50
	maxContentLen    = 5000
)

// Service implements the discussion operations over a Store, gating
// mutations through identity ownership.
type Service struct {
	store  Store
	retry  storage.RetryConfig
	logger *zap.Logger
}

// NewService creates a comment service over the given store.
func NewService(store Store, retry storage.RetryConfig, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		retry:  retry,
		logger: logger,
	}
}

// ThreadQuery addresses one thread fetch. Offset and Size paginate root
// comments after ordering; Size <= 0 returns all of them.
type ThreadQuery struct {
	Category string
	Slug     string
	Sort     Sort
	Offset   int
	Size     int
}

// Thread returns the nested comment tree for a post. An unknown post is an
// empty thread, not an error.
func (s *Service) Thread(ctx context.Context, q ThreadQuery, viewer *identity.Identity) ([]*Comment, error) {
	if q.Offset < 0 {
		return nil, fmt.Errorf("%w: page_offset must be non-negative", ErrValidation)
	}

	post, err := s.store.GetPost(ctx, q.Category, q.Slug)
	if err != nil {
		if storage.IsNotFound(err) {
			return []*Comment{}, nil
		}
		return nil, fmt.Errorf("looking up post: %w", err)
	}

	var flat []*Comment
	err = storage.WithRetry(ctx, s.retry, func(ctx context.Context) error {
		var err error
		flat, err = s.store.ListComments(ctx, post.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	roots := BuildTree(flat, q.Sort)

	if viewer != nil {
		markOwnership(roots, viewer.ID, viewer.SiteOwner)
	}

	if q.Offset >= len(roots) {
		return []*Comment{}, nil
	}
	roots = roots[q.Offset:]
	if q.Size > 0 && q.Size < len(roots) {
		roots = roots[:q.Size]
	}

	return roots, nil
}

// CreateRequest carries one comment creation.
type CreateRequest struct {
	Category    string
	Slug        string
	ParentID    *int
	Content     string
	AuthorName  string
	AuthorEmail string
	AuthorIP    string
}

// Create validates and persists a new comment. When viewer is set, the
// comment is owned by that identity and its profile overrides any supplied
// author fields; anonymous comments require an author name.
func (s *Service) Create(ctx context.Context, req CreateRequest, viewer *identity.Identity) (*Comment, error) {
	c := &Comment{
		Content:     strings.TrimSpace(req.Content),
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.ToLower(strings.TrimSpace(req.AuthorEmail)),
		AuthorIP:    req.AuthorIP,
	}

	if viewer != nil {
		id := viewer.ID
		c.IdentityID = &id
		c.AuthorName = viewer.Name
		if c.AuthorName == "" {
			c.AuthorName = viewer.Email
		}
		c.AuthorEmail = viewer.Email
	}

	if err := s.validate(c, viewer == nil); err != nil {
		return nil, err
	}

	post, err := s.store.GetOrCreatePost(ctx, req.Category, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("resolving post: %w", err)
	}
	c.PostID = post.ID

	if req.ParentID != nil {
		parent, err := s.store.GetComment(ctx, *req.ParentID)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, ErrInvalidParent
			}
			return nil, fmt.Errorf("looking up parent: %w", err)
		}
		if parent.PostID != post.ID {
			return nil, ErrInvalidParent
		}
		c.ParentID = req.ParentID
	}

	created, err := s.store.CreateComment(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	created.Children = []*Comment{}
	created.IsCommentOwner = true
	created.IsPostAuthor = viewer != nil && viewer.SiteOwner

	s.logger.Info("comment created",
		zap.Int("comment_id", created.ID),
		zap.Int("post_id", post.ID),
		zap.Bool("anonymous", created.IdentityID == nil))

	return created, nil
}

// Edit replaces a comment's content. Only the owning identity may edit;
// site-owner moderation covers delete, not edit, and anonymous comments
// are immutable after creation.
func (s *Service) Edit(ctx context.Context, commentID int, content string, viewer *identity.Identity) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if len(content) > maxContentLen {
		return nil, fmt.Errorf("%w: content exceeds %d characters", ErrValidation, maxContentLen)
	}
	if viewer == nil {
		return nil, ErrForbidden
	}

	c, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("looking up comment: %w", err)
	}

	// Anonymous comments have no owner to authenticate as.
	if c.IdentityID == nil || *c.IdentityID != viewer.ID {
		return nil, ErrForbidden
	}

	updated, err := s.store.UpdateCommentContent(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	updated.Children = []*Comment{}
	updated.IsCommentOwner = true
	updated.IsPostAuthor = viewer.SiteOwner

	return updated, nil
}

// Delete removes a comment and its whole subtree. The owner or a site
// owner may delete; site owners may also remove anonymous comments.
func (s *Service) Delete(ctx context.Context, commentID int, viewer *identity.Identity) error {
	if viewer == nil {
		return ErrForbidden
	}

	c, err := s.store.GetComment(ctx, commentID)
	if err != nil {
		if storage.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("looking up comment: %w", err)
	}

	if !viewer.Owns(c.IdentityID) {
		return ErrForbidden
	}

	if err := s.store.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	s.logger.Info("comment deleted",
		zap.Int("comment_id", commentID),
		zap.Bool("moderation", c.IdentityID == nil || *c.IdentityID != viewer.ID))

	return nil
}

func (s *Service) validate(c *Comment, anonymous bool) error {
	if c.Content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if len(c.Content) > maxContentLen {
		return fmt.Errorf("%w: content exceeds %d characters", ErrValidation, maxContentLen)
	}

	if anonymous {
		if c.AuthorName == "" {
			return fmt.Errorf("%w: author name is required for anonymous comments", ErrValidation)
		}
		if c.AuthorEmail != "" && !strings.Contains(c.AuthorEmail, "@") {
			return fmt.Errorf("%w: author email is malformed", ErrValidation)
		}
	}
	if len(c.AuthorName) > maxAuthorNameLen {
		return fmt.Errorf("%w: author name exceeds %d characters", ErrValidation, maxAuthorNameLen)
	}

	return nil
}
