package comments

import "context"

// Store is the persistence surface the service needs. The storage backends
// implement it; DeleteComment must cascade to descendants.
type Store interface {
	// GetPost retrieves a post by its (category, slug) address.
	GetPost(ctx context.Context, category, slug string) (*Post, error)

	// GetOrCreatePost retrieves the post, creating it on first comment.
	GetOrCreatePost(ctx context.Context, category, slug string) (*Post, error)

	// ListComments returns every comment on a post, flat, in no particular
	// order.
	ListComments(ctx context.Context, postID int) ([]*Comment, error)

	// GetComment retrieves a single comment by id.
	GetComment(ctx context.Context, id int) (*Comment, error)

	// CreateComment persists a new comment and returns it with id and
	// created_at filled in.
	CreateComment(ctx context.Context, c *Comment) (*Comment, error)

	// UpdateCommentContent replaces a comment's content, touching nothing
	// else.
	UpdateCommentContent(ctx context.Context, id int, content string) (*Comment, error)

	// DeleteComment removes a comment and all its descendants.
	DeleteComment(ctx context.Context, id int) error
}
