package comments

import "fmt"

// Sort names the sibling orderings a thread fetch supports.
type Sort string

const (
	// SortBest orders siblings by upvotes, oldest first among equals.
	SortBest Sort = "best"

	// SortNew orders siblings newest first.
	SortNew Sort = "new"
)

// ParseSort validates a sort value from the request surface. Empty input
// defaults to best.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case "":
		return SortBest, nil
	case SortBest, SortNew:
		return Sort(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// less reports whether a should precede b among siblings under this sort.
// Comment id is the final tiebreak so the order is total.
func (s Sort) less(a, b *Comment) bool {
	switch s {
	case SortNew:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	default: // best
		if a.Upvote != b.Upvote {
			return a.Upvote > b.Upvote
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	}
}
