package config

// Config is the full configuration for the peruse system.
type Config struct {
	Version int

	Storage     StorageConfig
	API         APIConfig
	Ranking     RankingConfig
	VectorStore VectorStoreConfig
	Events      EventsConfig
}

// StorageConfig selects and parameterizes the relational backend.
type StorageConfig struct {
	// Backend is one of "sqlite", "postgres", "inmemory".
	Backend string

	// SQLitePath is the database file path for the sqlite backend.
	SQLitePath string

	// PostgresDSN is the connection string for the postgres backend.
	PostgresDSN string
}

// APIConfig parameterizes the HTTP server.
type APIConfig struct {
	// Listen is the address to listen on (e.g. ":8080").
	Listen string

	// StreamPollSeconds is the feed stream poll interval, per connection.
	StreamPollSeconds uint
}

// RankingConfig parameterizes the feed ranking engine.
type RankingConfig struct {
	// CandidateLimit bounds the ranking window per request.
	CandidateLimit uint

	// SimilarityTopK is how many nearest chunks the ANN index returns.
	SimilarityTopK uint

	// WeightRecency, WeightExternal, and WeightSimilarity blend the
	// balanced preset's signals.
	WeightRecency    float64
	WeightExternal   float64
	WeightSimilarity float64
}

// VectorStoreConfig selects and parameterizes the ANN index.
type VectorStoreConfig struct {
	// Provider is one of "sqlite", "qdrant", "inmemory", "none".
	Provider string

	// Target is the database path (sqlite) or address (qdrant).
	Target string

	// Collection is the qdrant collection name.
	Collection string

	// Dimensions is the embedding dimensionality. A mismatch against
	// stored vectors is fatal at startup.
	Dimensions uint
}

// EventsConfig parameterizes the ingestion event stream.
type EventsConfig struct {
	// Provider is one of "none", "kafka".
	Provider string

	// Brokers are the kafka broker addresses.
	Brokers []string

	// Topic is the kafka topic ingestion events are written to.
	Topic string
}
