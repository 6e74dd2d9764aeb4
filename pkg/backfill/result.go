package backfill

import "fmt"

// Result contains statistics from a reindex run.
type Result struct {
	Scanned  int
	Mirrored int
	Skipped  int
	Batches  int
}

// Summary returns a human-readable summary of the reindex result.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"Reindex complete: %d chunks scanned, %d mirrored in %d batches, %d skipped (no embedding)",
		r.Scanned, r.Mirrored, r.Batches, r.Skipped,
	)
}
