package feed

import (
	"errors"
	"fmt"
)

// Preset is a named, fixed weighting strategy over recency/score/similarity
// signals, selectable by the client per request.
type Preset string

const (
	PresetBalanced     Preset = "balanced"
	PresetTopFirst     Preset = "top_first"
	PresetNewerFirst   Preset = "newer_first"
	PresetSimilarFirst Preset = "similar_first"
)

// SourceAll is the source filter value selecting every source.
const SourceAll = "all"

var (
	// ErrInvalidPreset is returned for an unknown ranking preset value.
	// Unknown presets are rejected, never silently mapped to a default.
	ErrInvalidPreset = errors.New("invalid ranking preset")

	// ErrInvalidSource is returned for a source filter that names no
	// registered source.
	ErrInvalidSource = errors.New("invalid source filter")

	// ErrInvalidPage is returned for a negative offset or non-positive limit.
	ErrInvalidPage = errors.New("invalid pagination")
)

// ParsePreset validates a client-supplied ranking preset. The empty string
// selects PresetBalanced.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "":
		return PresetBalanced, nil
	case PresetBalanced, PresetTopFirst, PresetNewerFirst, PresetSimilarFirst:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreset, s)
	}
}

// Query describes one feed page request.
type Query struct {
	Offset int
	Limit  int

	// Source filters articles to one source key, or SourceAll / "" for all.
	Source string

	Preset Preset

	// Authenticated marks that the request carries an identity; similarity
	// ranking only applies to authenticated requests with reading history.
	Authenticated bool
}

// Validate checks pagination bounds. Preset and source validity are checked
// separately so their errors stay distinguishable.
func (q Query) Validate() error {
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must be >= 0", ErrInvalidPage)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: limit must be > 0", ErrInvalidPage)
	}
	return nil
}
