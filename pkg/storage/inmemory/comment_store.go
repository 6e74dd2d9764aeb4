package inmemory

import (
	"context"
	"strconv"
	"time"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/storage"
)

// GetPost retrieves a post by its (category, slug) address.
func (d *Driver) GetPost(_ context.Context, category, slug string) (*comments.Post, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.posts {
		if p.Category == category && p.Slug == slug {
			out := *p
			return &out, nil
		}
	}

	return nil, storage.ErrNotFound{Entity: "post", Key: category + "/" + slug}
}

// GetOrCreatePost retrieves the post, creating it on first comment.
func (d *Driver) GetOrCreatePost(ctx context.Context, category, slug string) (*comments.Post, error) {
	if p, err := d.GetPost(ctx, category, slug); err == nil {
		return p, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextPostID++
	p := &comments.Post{
		ID:       d.nextPostID,
		Category: category,
		Slug:     slug,
	}
	d.posts[p.ID] = p

	out := *p
	return &out, nil
}

// ListComments returns every comment on a post, flat.
func (d *Driver) ListComments(_ context.Context, postID int) ([]*comments.Comment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var result []*comments.Comment
	for _, c := range d.comments {
		if c.PostID == postID {
			out := copyComment(c)
			out.IsPostAuthor = d.authorIsSiteOwnerLocked(c.IdentityID)
			result = append(result, out)
		}
	}

	return result, nil
}

// GetComment retrieves a single comment by id.
func (d *Driver) GetComment(_ context.Context, id int) (*comments.Comment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.comments[id]
	if !ok {
		return nil, storage.ErrNotFound{Entity: "comment", Key: strconv.Itoa(id)}
	}

	out := copyComment(c)
	out.IsPostAuthor = d.authorIsSiteOwnerLocked(c.IdentityID)

	return out, nil
}

// CreateComment persists a new comment.
func (d *Driver) CreateComment(_ context.Context, c *comments.Comment) (*comments.Comment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextCommentID++
	stored := copyComment(c)
	stored.ID = d.nextCommentID
	stored.CreatedAt = time.Now()
	d.comments[stored.ID] = stored

	return copyComment(stored), nil
}

// UpdateCommentContent replaces a comment's content, touching nothing else.
func (d *Driver) UpdateCommentContent(_ context.Context, id int, content string) (*comments.Comment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.comments[id]
	if !ok {
		return nil, storage.ErrNotFound{Entity: "comment", Key: strconv.Itoa(id)}
	}
	c.Content = content

	return copyComment(c), nil
}

// DeleteComment removes a comment and all its descendants, matching the
// relational backends' cascade.
func (d *Driver) DeleteComment(_ context.Context, id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.comments[id]; !ok {
		return storage.ErrNotFound{Entity: "comment", Key: strconv.Itoa(id)}
	}

	doomed := map[int]bool{id: true}
	// Sweep until no more descendants are found; depth is unbounded.
	for {
		grew := false
		for _, c := range d.comments {
			if c.ParentID == nil || doomed[c.ID] {
				continue
			}
			if doomed[*c.ParentID] {
				doomed[c.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	for cid := range doomed {
		delete(d.comments, cid)
	}

	return nil
}

func (d *Driver) authorIsSiteOwnerLocked(identityID *int) bool {
	if identityID == nil {
		return false
	}
	ident, ok := d.identities[*identityID]

	return ok && ident.SiteOwner
}

func copyComment(c *comments.Comment) *comments.Comment {
	out := *c
	out.Children = []*comments.Comment{}
	if c.ParentID != nil {
		v := *c.ParentID
		out.ParentID = &v
	}
	if c.IdentityID != nil {
		v := *c.IdentityID
		out.IdentityID = &v
	}

	return &out
}
