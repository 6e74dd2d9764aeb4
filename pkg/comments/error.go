package comments

import "errors"

var (
	// ErrInvalidSort is returned for an unknown sort value.
	ErrInvalidSort = errors.New("invalid sort")

	// ErrInvalidParent is returned when parent_id doesn't reference an
	// existing comment on the same post.
	ErrInvalidParent = errors.New("parent comment not found on this post")

	// ErrForbidden is returned when the viewer may not modify a comment.
	// The message deliberately doesn't distinguish "not yours" from
	// "doesn't exist for you".
	ErrForbidden = errors.New("not allowed to modify this comment")

	// ErrValidation wraps all field-level validation failures on create
	// and edit.
	ErrValidation = errors.New("invalid comment")
)
