package comments

import "sort"

// BuildTree nests a flat comment slice into its tree, ordered by sort at
// every level and with Depth derived along the way. Children are grouped
// by parent id in one pass, so input order doesn't matter; orphans whose
// parent is missing are dropped.
func BuildTree(flat []*Comment, by Sort) []*Comment {
	if len(flat) == 0 {
		return []*Comment{}
	}

	byID := make(map[int]*Comment, len(flat))
	for _, c := range flat {
		c.Children = []*Comment{}
		byID[c.ID] = c
	}

	roots := make([]*Comment, 0)
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		parent, ok := byID[*c.ParentID]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, c)
	}

	sortTree(roots, by, 0)

	return roots
}

func sortTree(siblings []*Comment, by Sort, depth int) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return by.less(siblings[i], siblings[j])
	})
	for _, c := range siblings {
		c.Depth = depth
		sortTree(c.Children, by, depth+1)
	}
}

// markOwnership sets IsCommentOwner across the tree for the given viewer
// identity id and site-owner flag.
func markOwnership(siblings []*Comment, viewerID int, siteOwner bool) {
	for _, c := range siblings {
		c.IsCommentOwner = siteOwner ||
			(c.IdentityID != nil && *c.IdentityID == viewerID)
		markOwnership(c.Children, viewerID, siteOwner)
	}
}
