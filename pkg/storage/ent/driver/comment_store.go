package entdriver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/storage/ent"
	entcomment "github.com/perusehq/peruse/pkg/storage/ent/comment"
	"github.com/perusehq/peruse/pkg/storage/ent/post"
)

// GetPost retrieves a post by its (category, slug) address.
func (ed *EntDriver) GetPost(ctx context.Context, category, slug string) (*comments.Post, error) {
	ep, err := ed.Client.Post.Query().
		Where(
			post.Category(category),
			post.Slug(slug),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "post", Key: category + "/" + slug}
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return entPostToPost(ep), nil
}

// GetOrCreatePost retrieves the post, creating it on first comment.
func (ed *EntDriver) GetOrCreatePost(ctx context.Context, category, slug string) (*comments.Post, error) {
	existing, err := ed.GetPost(ctx, category, slug)
	if err == nil {
		return existing, nil
	}
	if !storage.IsNotFound(err) {
		return nil, err
	}

	created, err := ed.Client.Post.Create().
		SetCategory(category).
		SetSlug(slug).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return entPostToPost(created), nil
}

// ListComments returns every comment on a post, flat.
func (ed *EntDriver) ListComments(ctx context.Context, postID int) ([]*comments.Comment, error) {
	rows, err := ed.Client.Comment.Query().
		Where(entcomment.PostID(postID)).
		Order(ent.Asc(entcomment.FieldCreatedAt)).
		WithIdentity().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	result := make([]*comments.Comment, 0, len(rows))
	for _, row := range rows {
		result = append(result, entCommentToComment(row))
	}

	return result, nil
}

// GetComment retrieves a single comment by id.
func (ed *EntDriver) GetComment(ctx context.Context, id int) (*comments.Comment, error) {
	row, err := ed.Client.Comment.Query().
		Where(entcomment.ID(id)).
		WithIdentity().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "comment", Key: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return entCommentToComment(row), nil
}

// CreateComment persists a new comment.
func (ed *EntDriver) CreateComment(ctx context.Context, c *comments.Comment) (*comments.Comment, error) {
	create := ed.Client.Comment.Create().
		SetPostID(c.PostID).
		SetContent(c.Content).
		SetNillableParentID(c.ParentID).
		SetNillableIdentityID(c.IdentityID).
		SetAuthorIP(c.AuthorIP)
	if c.AuthorName != "" {
		create.SetAuthorName(c.AuthorName)
	}
	if c.AuthorEmail != "" {
		create.SetAuthorEmail(c.AuthorEmail)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return entCommentToComment(row), nil
}

// UpdateCommentContent replaces a comment's content, touching nothing else.
func (ed *EntDriver) UpdateCommentContent(ctx context.Context, id int, content string) (*comments.Comment, error) {
	row, err := ed.Client.Comment.UpdateOneID(id).
		SetContent(content).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{Entity: "comment", Key: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return entCommentToComment(row), nil
}

// DeleteComment removes a comment; the foreign key cascades to all
// descendants.
func (ed *EntDriver) DeleteComment(ctx context.Context, id int) error {
	err := ed.Client.Comment.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return storage.ErrNotFound{Entity: "comment", Key: strconv.Itoa(id)}
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// Conversion helpers
func entPostToPost(ep *ent.Post) *comments.Post {
	return &comments.Post{
		ID:       ep.ID,
		Category: ep.Category,
		Slug:     ep.Slug,
		Title:    ep.Title,
	}
}

func entCommentToComment(ec *ent.Comment) *comments.Comment {
	c := &comments.Comment{
		ID:         ec.ID,
		PostID:     ec.PostID,
		ParentID:   ec.ParentID,
		IdentityID: ec.IdentityID,
		AuthorIP:   ec.AuthorIP,
		Content:    ec.Content,
		Upvote:     ec.Upvote,
		CreatedAt:  ec.CreatedAt,
		Children:   []*comments.Comment{},
	}
	if ec.AuthorName != nil {
		c.AuthorName = *ec.AuthorName
	}
	if ec.AuthorEmail != nil {
		c.AuthorEmail = *ec.AuthorEmail
	}
	if ident := ec.Edges.Identity; ident != nil {
		c.IsPostAuthor = ident.SiteOwner
	}

	return c
}
