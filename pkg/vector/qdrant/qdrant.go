// Package qdrant provides a Qdrant-backed vector driver for deployments
// where the chunk index lives outside the relational database.
package qdrant

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/perusehq/peruse/pkg/vector"
)

const (
	// DefaultCollectionName is the default collection for chunk embeddings.
	DefaultCollectionName = "peruse_chunks"
)

// Driver implements vector.Driver using Qdrant's gRPC API.
type Driver struct {
	client         *qdrant.Client
	collectionName string
	logger         *zap.Logger
}

// Config holds configuration for the Qdrant driver.
type Config struct {
	// Host is the Qdrant server host (e.g. "localhost").
	Host string

	// Port is the Qdrant gRPC port (typically 6334).
	Port int

	// CollectionName is the collection to use.
	// Defaults to DefaultCollectionName if empty.
	CollectionName string

	// Dimensions is the embedding dimension for the collection.
	Dimensions uint
}

// NewDriver creates a new Qdrant vector driver, creating the collection if
// needed. An existing collection with a different vector size fails with
// vector.ErrDimensionMismatch so a misconfigured deployment aborts at
// startup.
func NewDriver(ctx context.Context, c Config, logger *zap.Logger) (*Driver, error) {
	if c.Host == "" {
		return nil, fmt.Errorf("qdrant host is required")
	}
	if c.Dimensions == 0 {
		return nil, fmt.Errorf("qdrant embedding dimensions cannot be 0, must be configured")
	}

	collectionName := c.CollectionName
	if collectionName == "" {
		collectionName = DefaultCollectionName
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: c.Host,
		Port: c.Port,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to qdrant: %v", vector.ErrConnection, err)
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: checking collection %q: %v", vector.ErrConnection, collectionName, err)
	}

	if exists {
		info, err := client.GetCollectionInfo(ctx, collectionName)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("getting collection info for %q: %w", collectionName, err)
		}

		size := info.GetConfig().GetParams().GetVectorsConfig().GetParams().GetSize()
		if size != uint64(c.Dimensions) {
			client.Close()
			return nil, fmt.Errorf("%w: collection has %d, configured %d",
				vector.ErrDimensionMismatch, size, c.Dimensions)
		}
	} else {
		err := client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: collectionName,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(c.Dimensions),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("creating collection %q: %w", collectionName, err)
		}
	}

	logger.Info("connected to Qdrant",
		zap.String("host", c.Host),
		zap.Int("port", c.Port),
		zap.String("collection", collectionName),
		zap.Uint("dimensions", c.Dimensions),
	)

	return &Driver{
		client:         client,
		collectionName: collectionName,
		logger:         logger,
	}, nil
}

// pointID converts a chunk ID into a Qdrant point id. Chunk IDs are the
// numeric relational ids rendered as strings.
func pointID(id string) (*qdrant.PointId, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("chunk id %q is not numeric: %w", id, err)
	}
	return qdrant.NewIDNum(n), nil
}

// Add stores documents with their embeddings.
func (d *Driver) Add(ctx context.Context, docs []vector.Document) error {
	if len(docs) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(docs))
	for _, doc := range docs {
		id, err := pointID(doc.ID)
		if err != nil {
			return err
		}
		points = append(points, &qdrant.PointStruct{
			Id:      id,
			Vectors: qdrant.NewVectors(doc.Embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				"chunk_id":   doc.ID,
				"article_id": int64(doc.ArticleID),
			}),
		})
	}

	_, err := d.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: d.collectionName,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("upserting %d points: %w", len(points), err)
	}

	d.logger.Debug("added chunks to qdrant",
		zap.Int("count", len(docs)),
	)

	return nil
}

// Query finds the topK most similar chunks to the given embedding.
func (d *Driver) Query(ctx context.Context, embedding []float32, topK int) ([]vector.QueryResult, error) {
	if topK <= 0 {
		topK = 10
	}

	scored, err := d.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: d.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("querying collection %q: %w", d.collectionName, err)
	}

	results := make([]vector.QueryResult, 0, len(scored))
	for _, point := range scored {
		payload := point.GetPayload()
		results = append(results, vector.QueryResult{
			Document: vector.Document{
				ID:        payload["chunk_id"].GetStringValue(),
				ArticleID: int(payload["article_id"].GetIntegerValue()),
			},
			Score: point.GetScore(),
		})
	}

	return results, nil
}

// Get retrieves documents by their IDs.
func (d *Driver) Get(ctx context.Context, ids []string) ([]vector.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pid, err := pointID(id)
		if err != nil {
			return nil, err
		}
		pointIDs = append(pointIDs, pid)
	}

	points, err := d.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: d.collectionName,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, fmt.Errorf("getting %d points: %w", len(ids), err)
	}

	docs := make([]vector.Document, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		docs = append(docs, vector.Document{
			ID:        payload["chunk_id"].GetStringValue(),
			ArticleID: int(payload["article_id"].GetIntegerValue()),
			Embedding: point.GetVectors().GetVector().GetData(),
		})
	}

	return docs, nil
}

// Delete removes documents by their IDs.
func (d *Driver) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pid, err := pointID(id)
		if err != nil {
			return err
		}
		pointIDs = append(pointIDs, pid)
	}

	_, err := d.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: d.collectionName,
		Points:         qdrant.NewPointsSelector(pointIDs...),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("deleting %d points: %w", len(ids), err)
	}

	d.logger.Debug("deleted chunks from qdrant",
		zap.Int("count", len(ids)),
	)

	return nil
}

// Close releases the client connection.
func (d *Driver) Close() error {
	return d.client.Close()
}
