// Package inmemory provides a map-backed implementation of every domain
// store. It exists for tests and for running the server without a
// database; it mirrors the relational backends' semantics, including the
// comment subtree cascade.
package inmemory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/perusehq/peruse/pkg/comments"
	"github.com/perusehq/peruse/pkg/feed"
	"github.com/perusehq/peruse/pkg/identity"
	"github.com/perusehq/peruse/pkg/storage"
)

type articleRow struct {
	id          int
	url         string
	title       string
	contentText string
	createdAt   time.Time
}

type metadataRow struct {
	articleID     int
	sourceID      int
	externalScore *float64
	envelope      feed.MetadataEnvelope
	submittedAt   time.Time
}

// Driver is a map-backed store implementing the feed, ingest, comment, and
// identity store interfaces.
type Driver struct {
	mu sync.RWMutex

	nextArticleID  int
	nextSourceID   int
	nextHistoryID  int
	nextPostID     int
	nextCommentID  int
	nextIdentityID int
	nextSessionID  int
	nextCredID     int

	articles  map[int]*articleRow
	urls      map[string]int
	sources   map[int]*feed.Source
	sourceKey map[string]int
	metadata  []*metadataRow
	chunks    map[string]feed.Chunk
	history   []feed.HistoryEntry

	posts       map[int]*comments.Post
	comments    map[int]*comments.Comment
	identities  map[int]*identity.Identity
	sessions    map[string]*identity.Session
	credentials map[int]*identity.Credential
}

// NewDriver creates an empty in-memory store.
func NewDriver() *Driver {
	return &Driver{
		articles:    make(map[int]*articleRow),
		urls:        make(map[string]int),
		sources:     make(map[int]*feed.Source),
		sourceKey:   make(map[string]int),
		chunks:      make(map[string]feed.Chunk),
		posts:       make(map[int]*comments.Post),
		comments:    make(map[int]*comments.Comment),
		identities:  make(map[int]*identity.Identity),
		sessions:    make(map[string]*identity.Session),
		credentials: make(map[int]*identity.Credential),
	}
}

// Close is a no-op.
func (d *Driver) Close() error {
	return nil
}

// ListCandidates returns up to q.Limit articles newest-first with their
// metadata attached, excluding articles in the reading history.
func (d *Driver) ListCandidates(_ context.Context, q feed.CandidateQuery) ([]*feed.Article, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	inHistory := make(map[int]bool, len(d.history))
	for _, h := range d.history {
		inHistory[h.ArticleID] = true
	}

	ids := make([]int, 0, len(d.articles))
	for id := range d.articles {
		if inHistory[id] {
			continue
		}
		if q.SourceKey != "" && !d.articleHasSource(id, q.SourceKey) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	if q.Limit > 0 && len(ids) > q.Limit {
		ids = ids[:q.Limit]
	}

	result := make([]*feed.Article, 0, len(ids))
	for _, id := range ids {
		result = append(result, d.buildArticle(id))
	}

	return result, nil
}

// GetSourceByKey resolves a registered source by its key.
func (d *Driver) GetSourceByKey(_ context.Context, key string) (*feed.Source, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id, ok := d.sourceKey[key]
	if !ok {
		return nil, storage.ErrNotFound{Entity: "source", Key: key}
	}
	s := *d.sources[id]

	return &s, nil
}

// MaxArticleID returns the highest article id, or 0 for an empty store.
func (d *Driver) MaxArticleID(_ context.Context) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.maxArticleIDLocked(), nil
}

// CountArticlesAfter counts articles with an id in (after, upTo].
func (d *Driver) CountArticlesAfter(_ context.Context, after, upTo int) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	count := 0
	for id := range d.articles {
		if id > after && id <= upTo {
			count++
		}
	}

	return count, nil
}

// ListHistory returns all reading-history entries.
func (d *Driver) ListHistory(_ context.Context) ([]feed.HistoryEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := make([]feed.HistoryEntry, len(d.history))
	copy(entries, d.history)

	return entries, nil
}

// ChunksByArticles returns all chunks belonging to the given articles.
func (d *Driver) ChunksByArticles(_ context.Context, articleIDs []int) ([]feed.Chunk, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	want := make(map[int]bool, len(articleIDs))
	for _, id := range articleIDs {
		want[id] = true
	}

	var result []feed.Chunk
	for _, ch := range d.chunks {
		if want[ch.ArticleID] {
			result = append(result, ch)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// ListChunks pages through every stored chunk in id order.
func (d *Driver) ListChunks(_ context.Context, offset, limit int) ([]feed.Chunk, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	all := make([]feed.Chunk, 0, len(d.chunks))
	for _, ch := range d.chunks {
		all = append(all, ch)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	out := make([]feed.Chunk, len(all))
	copy(out, all)
	return out, nil
}

// UpsertArticle creates the article on first sight of a URL.
func (d *Driver) UpsertArticle(_ context.Context, url, title, contentText string) (*feed.Article, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.urls[url]; ok {
		return d.buildArticle(id), false, nil
	}

	d.nextArticleID++
	row := &articleRow{
		id:          d.nextArticleID,
		url:         url,
		title:       title,
		contentText: contentText,
		createdAt:   time.Now(),
	}
	d.articles[row.id] = row
	d.urls[url] = row.id

	return d.buildArticle(row.id), true, nil
}

// EnsureSource registers a source key on first sight.
func (d *Driver) EnsureSource(_ context.Context, key, name, baseURL string) (*feed.Source, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.sourceKey[key]; ok {
		s := *d.sources[id]
		return &s, nil
	}

	if name == "" {
		name = key
	}
	d.nextSourceID++
	s := &feed.Source{
		ID:      d.nextSourceID,
		Key:     key,
		Name:    name,
		BaseURL: baseURL,
	}
	d.sources[s.ID] = s
	d.sourceKey[key] = s.ID

	out := *s
	return &out, nil
}

// UpsertMetadata creates or refreshes the (article, source) metadata row.
func (d *Driver) UpsertMetadata(_ context.Context, articleID, sourceID int, m feed.SourceMetadata) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, row := range d.metadata {
		if row.articleID == articleID && row.sourceID == sourceID {
			row.externalScore = m.ExternalScore
			row.envelope = m.Envelope
			if !m.SubmittedAt.IsZero() {
				row.submittedAt = m.SubmittedAt
			}
			return nil
		}
	}

	d.metadata = append(d.metadata, &metadataRow{
		articleID:     articleID,
		sourceID:      sourceID,
		externalScore: m.ExternalScore,
		envelope:      m.Envelope,
		submittedAt:   m.SubmittedAt,
	})

	return nil
}

// ReplaceChunks swaps an article's embedding chunks for the given set.
func (d *Driver) ReplaceChunks(_ context.Context, articleID int, chunks []feed.Chunk) ([]feed.Chunk, []string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var removed []string
	for id, ch := range d.chunks {
		if ch.ArticleID == articleID {
			removed = append(removed, id)
			delete(d.chunks, id)
		}
	}

	stored := make([]feed.Chunk, 0, len(chunks))
	for _, ch := range chunks {
		ch.ArticleID = articleID
		if ch.CreatedAt.IsZero() {
			ch.CreatedAt = time.Now()
		}
		d.chunks[ch.ID] = ch
		stored = append(stored, ch)
	}

	return stored, removed, nil
}

// AddHistory records a weighted reading-history entry, updating the weight
// in place when the article is already present.
func (d *Driver) AddHistory(_ context.Context, articleID int, weight float64) (*feed.HistoryEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.articles[articleID]; !ok {
		return nil, storage.ErrNotFound{Entity: "article", Key: strconv.Itoa(articleID)}
	}

	for i := range d.history {
		if d.history[i].ArticleID == articleID {
			d.history[i].Weight = weight
			entry := d.history[i]
			return &entry, nil
		}
	}

	d.nextHistoryID++
	entry := feed.HistoryEntry{
		ID:        d.nextHistoryID,
		ArticleID: articleID,
		Weight:    weight,
		AddedAt:   time.Now(),
	}
	d.history = append(d.history, entry)

	return &entry, nil
}

func (d *Driver) articleHasSource(articleID int, key string) bool {
	sourceID, ok := d.sourceKey[key]
	if !ok {
		return false
	}
	for _, row := range d.metadata {
		if row.articleID == articleID && row.sourceID == sourceID {
			return true
		}
	}

	return false
}

func (d *Driver) buildArticle(id int) *feed.Article {
	row := d.articles[id]
	a := &feed.Article{
		ID:          row.id,
		URL:         row.url,
		Title:       row.title,
		ContentText: row.contentText,
		CreatedAt:   row.createdAt,
		Sources:     []feed.SourceMetadata{},
	}

	for _, m := range d.metadata {
		if m.articleID != id {
			continue
		}
		sm := feed.SourceMetadata{
			ExternalScore: m.externalScore,
			SubmittedAt:   m.submittedAt,
			Envelope:      m.envelope,
		}
		if s, ok := d.sources[m.sourceID]; ok {
			sm.SourceKey = s.Key
			sm.SourceName = s.Name
		}
		a.Sources = append(a.Sources, sm)
	}

	return a
}

func (d *Driver) maxArticleIDLocked() int {
	max := 0
	for id := range d.articles {
		if id > max {
			max = id
		}
	}

	return max
}
