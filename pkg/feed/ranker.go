package feed

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/storage"
	"github.com/perusehq/peruse/pkg/vector"
	"github.com/perusehq/peruse/pkg/vector/vectorutil"
)

// Weights is the signal blend for the balanced composite score.
type Weights struct {
	Recency    float64
	External   float64
	Similarity float64
}

// Config is the immutable ranking configuration injected into the Ranker at
// construction. Weights are never mutated after startup.
type Config struct {
	// Balanced is the signal blend used by the balanced preset (and by
	// similar_first when it degrades for lack of history).
	Balanced Weights

	// CandidateLimit bounds the ranking window, newest-first, so a single
	// page request never scores the whole article table.
	CandidateLimit int

	// SimilarityTopK is how many nearest chunks the ANN index is asked for
	// when computing similarity-to-history.
	SimilarityTopK int

	// HistoryWeightFloor substitutes for non-positive history weights so
	// freshly-added entries still contribute to the centroid.
	HistoryWeightFloor float64
}

// DefaultConfig returns the ranking configuration used when nothing is
// overridden.
func DefaultConfig() Config {
	return Config{
		Balanced:           Weights{Recency: 1, External: 1, Similarity: 1},
		CandidateLimit:     512,
		SimilarityTopK:     200,
		HistoryWeightFloor: 0.1,
	}
}

// Ranker computes ordered feed pages over the article store.
type Ranker struct {
	config   Config
	articles ArticleStore
	history  HistoryStore
	chunks   ChunkStore
	vectors  vector.Driver
	logger   *zap.Logger
}

// NewRanker creates a ranking engine. The vector driver may be nil, in
// which case similarity contributes nothing and similar_first always
// degrades to balanced.
func NewRanker(
	config Config,
	articles ArticleStore,
	history HistoryStore,
	chunks ChunkStore,
	vectors vector.Driver,
	logger *zap.Logger,
) *Ranker {
	if config.CandidateLimit <= 0 {
		config.CandidateLimit = DefaultConfig().CandidateLimit
	}
	if config.SimilarityTopK <= 0 {
		config.SimilarityTopK = DefaultConfig().SimilarityTopK
	}
	if config.HistoryWeightFloor <= 0 {
		config.HistoryWeightFloor = DefaultConfig().HistoryWeightFloor
	}

	return &Ranker{
		config:   config,
		articles: articles,
		history:  history,
		chunks:   chunks,
		vectors:  vectors,
		logger:   logger,
	}
}

// candidate carries one article and its raw ranking signals.
type candidate struct {
	article *Article

	submittedAt time.Time
	recency     float64
	external    float64
	hasExternal bool
	maxExternal float64
	similarity  float64

	composite float64
}

// Rank returns one ordered feed page for the query. Pagination applies to
// the final ranked order; pages across requests may shift when new articles
// arrive between them.
func (r *Ranker) Rank(ctx context.Context, q Query) (*Page, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	preset := q.Preset
	switch preset {
	case "":
		preset = PresetBalanced
	case PresetBalanced, PresetTopFirst, PresetNewerFirst, PresetSimilarFirst:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPreset, string(preset))
	}

	sourceKey := q.Source
	if sourceKey == SourceAll {
		sourceKey = ""
	}
	if sourceKey != "" {
		if _, err := r.articles.GetSourceByKey(ctx, sourceKey); err != nil {
			if storage.IsNotFound(err) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSource, sourceKey)
			}
			return nil, fmt.Errorf("resolving source filter: %w", err)
		}
	}

	articles, err := r.articles.ListCandidates(ctx, CandidateQuery{
		SourceKey: sourceKey,
		Limit:     r.config.CandidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	now := time.Now()
	candidates := make([]*candidate, 0, len(articles))
	for _, a := range articles {
		candidates = append(candidates, newCandidate(a, now))
	}

	// Similarity is personal: it only applies to authenticated requests,
	// and only when the preset consumes it.
	needSimilarity := q.Authenticated &&
		(preset == PresetSimilarFirst ||
			(preset == PresetBalanced && r.config.Balanced.Similarity > 0))

	hasHistory := false
	if needSimilarity {
		similarity, ok, err := r.historySimilarity(ctx)
		if err != nil {
			// Similarity is a ranking signal, not a correctness guarantee;
			// degrade rather than fail the page.
			r.logger.Warn("similarity signal unavailable", zap.Error(err))
		} else if ok {
			hasHistory = true
			for _, c := range candidates {
				c.similarity = similarity[c.article.ID]
			}
		}
	}

	if preset == PresetSimilarFirst && !hasHistory {
		preset = PresetBalanced
	}

	r.compose(candidates)
	sortCandidates(candidates, preset)

	return r.page(candidates, preset, q.Offset, q.Limit), nil
}

func newCandidate(a *Article, now time.Time) *candidate {
	c := &candidate{article: a, submittedAt: a.SubmittedAt()}

	// Recency: ln(1 + 1/hours_old), diminishing returns for fresh articles.
	basis := c.submittedAt
	if basis.IsZero() {
		basis = a.CreatedAt
	}
	hours := now.Sub(basis).Hours()
	if hours < 0.01 {
		hours = 0.01
	}
	c.recency = math.Log(1 + 1/hours)

	// External: sum of log-dampened per-source scores so one outlier source
	// does not dominate cross-posted articles.
	for _, s := range a.Sources {
		if s.ExternalScore == nil {
			continue
		}
		score := *s.ExternalScore
		if score < 0 {
			score = 0
		}
		c.external += math.Log(score + 1)
	}
	c.maxExternal, c.hasExternal = a.MaxExternalScore()

	return c
}

// historySimilarity builds the weight-normalized history centroid and asks
// the ANN index for the nearest chunks, keeping the best score per article.
// The second return value is false when there is no usable history.
func (r *Ranker) historySimilarity(ctx context.Context) (map[int]float64, bool, error) {
	if r.vectors == nil {
		return nil, false, nil
	}

	entries, err := r.history.ListHistory(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("listing history: %w", err)
	}
	if len(entries) == 0 {
		return nil, false, nil
	}

	weightByArticle := make(map[int]float64, len(entries))
	articleIDs := make([]int, 0, len(entries))
	for _, e := range entries {
		w := e.Weight
		if w <= 0 {
			w = r.config.HistoryWeightFloor
		}
		weightByArticle[e.ArticleID] = w
		articleIDs = append(articleIDs, e.ArticleID)
	}

	chunks, err := r.chunks.ChunksByArticles(ctx, articleIDs)
	if err != nil {
		return nil, false, fmt.Errorf("loading history chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil, false, nil
	}

	vectors := make([][]float32, 0, len(chunks))
	weights := make([]float64, 0, len(chunks))
	for _, ch := range chunks {
		vectors = append(vectors, ch.Embedding)
		weights = append(weights, weightByArticle[ch.ArticleID])
	}

	centroid := vectorutil.WeightedCentroid(vectors, weights)
	if centroid == nil {
		return nil, false, nil
	}

	results, err := r.vectors.Query(ctx, centroid, r.config.SimilarityTopK)
	if err != nil {
		return nil, false, fmt.Errorf("querying vector index: %w", err)
	}

	similarity := make(map[int]float64, len(results))
	history := make(map[int]bool, len(articleIDs))
	for _, id := range articleIDs {
		history[id] = true
	}
	for _, res := range results {
		// History articles are not feed candidates; skip their chunks.
		if history[res.ArticleID] {
			continue
		}
		score := float64(res.Score)
		if score > similarity[res.ArticleID] {
			similarity[res.ArticleID] = score
		}
	}

	return similarity, true, nil
}

// compose min-max-normalizes each signal across the candidate window and
// blends them into the composite score.
func (r *Ranker) compose(candidates []*candidate) {
	recency := normalizer(candidates, func(c *candidate) float64 { return c.recency })
	external := normalizer(candidates, func(c *candidate) float64 { return c.external })
	similarity := normalizer(candidates, func(c *candidate) float64 { return c.similarity })

	w := r.config.Balanced
	for _, c := range candidates {
		c.composite = w.Recency*recency(c) +
			w.External*external(c) +
			w.Similarity*similarity(c)
	}
}

// normalizer returns a min-max normalization closure over the candidate
// window for one signal. A degenerate window (all equal) normalizes to 0.
func normalizer(candidates []*candidate, signal func(*candidate) float64) func(*candidate) float64 {
	if len(candidates) == 0 {
		return func(*candidate) float64 { return 0 }
	}

	lo, hi := signal(candidates[0]), signal(candidates[0])
	for _, c := range candidates[1:] {
		v := signal(c)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return func(*candidate) float64 { return 0 }
	}
	return func(c *candidate) float64 { return (signal(c) - lo) / (hi - lo) }
}

// sortCandidates orders the window per preset. Every order ends in article
// id descending so ties are deterministic.
func sortCandidates(candidates []*candidate, preset Preset) {
	less := func(a, b *candidate) bool { return a.composite > b.composite }

	switch preset {
	case PresetTopFirst:
		less = func(a, b *candidate) bool {
			// Articles without any external score sort after all scored ones.
			if a.hasExternal != b.hasExternal {
				return a.hasExternal
			}
			if a.maxExternal != b.maxExternal {
				return a.maxExternal > b.maxExternal
			}
			return a.submittedAt.After(b.submittedAt)
		}
	case PresetNewerFirst:
		less = func(a, b *candidate) bool {
			if !a.submittedAt.Equal(b.submittedAt) {
				return a.submittedAt.After(b.submittedAt)
			}
			return false
		}
	case PresetSimilarFirst:
		less = func(a, b *candidate) bool { return a.similarity > b.similarity }
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.article.ID > b.article.ID
	})
}

// page slices the ranked window and shapes the response items.
func (r *Ranker) page(candidates []*candidate, preset Preset, offset, limit int) *Page {
	if offset >= len(candidates) {
		return &Page{Items: []FeedItem{}}
	}

	end := offset + limit
	if end > len(candidates) {
		end = len(candidates)
	}

	items := make([]FeedItem, 0, end-offset)
	for _, c := range candidates[offset:end] {
		item := FeedItem{
			ID:      c.article.ID,
			Title:   c.article.Title,
			URL:     c.article.URL,
			Score:   roundScore(c.composite),
			Sources: make([]FeedSource, 0, len(c.article.Sources)),
		}

		if !c.submittedAt.IsZero() {
			t := c.submittedAt
			item.SubmittedAt = &t
		}

		if preset == PresetSimilarFirst || c.similarity > 0 {
			s := roundScore(c.similarity)
			item.SimilarityScore = &s
		}

		for _, src := range c.article.Sources {
			item.Sources = append(item.Sources, FeedSource{
				Key:        src.SourceKey,
				Score:      src.ExternalScore,
				ExternalID: src.Envelope.ExternalID,
			})
		}

		items = append(items, item)
	}

	return &Page{Items: items}
}

// roundScore trims scores to a stable, presentation-friendly precision.
func roundScore(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
