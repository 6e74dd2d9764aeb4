// Package inmemory provides an in-memory vector driver for tests and
// ephemeral runs. Queries are exact (brute-force cosine), which is fine at
// test scale.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/perusehq/peruse/pkg/vector"
	"github.com/perusehq/peruse/pkg/vector/vectorutil"
)

// Driver implements vector.Driver using an in-memory map.
type Driver struct {
	mu   sync.RWMutex
	docs map[string]vector.Document
}

// NewDriver creates a new in-memory vector driver.
func NewDriver() *Driver {
	return &Driver{
		docs: make(map[string]vector.Document),
	}
}

// Add stores documents, replacing any with the same ID.
func (d *Driver) Add(_ context.Context, docs []vector.Document) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, doc := range docs {
		d.docs[doc.ID] = doc
	}
	return nil
}

// Query returns the topK documents by cosine similarity to the embedding.
func (d *Driver) Query(_ context.Context, embedding []float32, topK int) ([]vector.QueryResult, error) {
	if topK <= 0 {
		topK = 10
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	results := make([]vector.QueryResult, 0, len(d.docs))
	for _, doc := range d.docs {
		results = append(results, vector.QueryResult{
			Document: doc,
			Score:    float32(vectorutil.Cosine(embedding, doc.Embedding)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Get retrieves documents by their IDs. Missing IDs are skipped.
func (d *Driver) Get(_ context.Context, ids []string) ([]vector.Document, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	docs := make([]vector.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := d.docs[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Delete removes documents by their IDs.
func (d *Driver) Delete(_ context.Context, ids []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, id := range ids {
		delete(d.docs, id)
	}
	return nil
}

// Close is a no-op.
func (d *Driver) Close() error {
	return nil
}
