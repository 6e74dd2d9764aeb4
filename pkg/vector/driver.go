// Package vector provides interfaces and implementations for approximate
// nearest-neighbor search over article chunk embeddings.
package vector

import "context"

// Document represents one stored chunk embedding with the article it
// belongs to.
type Document struct {
	// ID is a unique identifier for the chunk (the chunk's storage id).
	ID string

	// ArticleID is the article this chunk was segmented from.
	ArticleID int

	// Embedding is the fixed-dimension vector for the chunk.
	Embedding []float32
}

// QueryResult represents a search result with similarity score.
type QueryResult struct {
	Document

	// Score is the similarity score (higher = more similar).
	Score float32
}

// Driver handles storage and KNN retrieval of chunk embeddings. The driver
// is the ranking engine's approximate-nearest-neighbor index; similarity is
// never computed by scanning the relational chunk table.
type Driver interface {
	// Add stores documents with their embeddings. A document with an
	// existing ID is updated in place.
	Add(ctx context.Context, docs []Document) error

	// Query finds the topK most similar documents to the given embedding.
	Query(ctx context.Context, embedding []float32, topK int) ([]QueryResult, error)

	// Get retrieves documents by their IDs.
	Get(ctx context.Context, ids []string) ([]Document, error)

	// Delete removes documents by their IDs.
	Delete(ctx context.Context, ids []string) error

	// Close releases any resources held by the driver.
	Close() error
}
