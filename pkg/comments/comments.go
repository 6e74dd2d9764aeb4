// Package comments stores and serves the hierarchical discussion threads
// hanging off posts. Comments are an adjacency-list tree: each row points
// at its parent, and deleting a parent removes the whole subtree.
package comments

import "time"

// Post anchors one discussion thread. The page content itself is rendered
// elsewhere; the core only needs the (category, slug) address.
type Post struct {
	ID       int
	Category string
	Slug     string
	Title    string
}

// Comment is one node of a discussion tree. Anonymous comments carry
// AuthorName/AuthorEmail; signed-in comments carry IdentityID and take
// their display name from the identity.
type Comment struct {
	ID          int        `json:"id"`
	PostID      int        `json:"-"`
	ParentID    *int       `json:"parent_id,omitempty"`
	IdentityID  *int       `json:"-"`
	AuthorName  string     `json:"author_name"`
	AuthorEmail string     `json:"-"`
	AuthorIP    string     `json:"-"`
	Content     string     `json:"content"`
	Upvote      int        `json:"upvote"`
	CreatedAt   time.Time  `json:"created_at"`
	Children    []*Comment `json:"children"`

	// Depth is derived during tree assembly, never stored; roots sit at 0.
	Depth int `json:"depth"`

	// IsPostAuthor marks comments written by a site owner, so threads can
	// badge the author's own replies.
	IsPostAuthor bool `json:"is_post_author"`

	// IsCommentOwner is per-viewer: true when the requesting identity may
	// edit or delete this comment.
	IsCommentOwner bool `json:"is_comment_owner"`
}
