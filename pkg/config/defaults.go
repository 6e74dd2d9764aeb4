package config

const (
	// v0 is the alpha version of the config
	v0 = 0

	// CurrentV is the currently supported version, points to v0
	CurrentV = v0
)

const (
	defaultStorageBackend = "sqlite"
	defaultSQLitePath     = "peruse.db"

	defaultAPIListen         = ":8080"
	defaultStreamPollSeconds = 10

	defaultCandidateLimit = 512
	defaultSimilarityTopK = 200

	defaultWeightRecency    = 1.0
	defaultWeightExternal   = 1.0
	defaultWeightSimilarity = 1.0

	defaultVectorProvider   = "sqlite"
	defaultVectorCollection = "peruse_chunks"
	defaultDimensions       = 768

	defaultEventsProvider = "none"
	defaultEventsTopic    = "peruse.articles"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Storage: StorageConfig{
			Backend:    defaultStorageBackend,
			SQLitePath: defaultSQLitePath,
		},
		API: APIConfig{
			Listen:            defaultAPIListen,
			StreamPollSeconds: defaultStreamPollSeconds,
		},
		Ranking: RankingConfig{
			CandidateLimit:   defaultCandidateLimit,
			SimilarityTopK:   defaultSimilarityTopK,
			WeightRecency:    defaultWeightRecency,
			WeightExternal:   defaultWeightExternal,
			WeightSimilarity: defaultWeightSimilarity,
		},
		VectorStore: VectorStoreConfig{
			Provider:   defaultVectorProvider,
			Collection: defaultVectorCollection,
			Dimensions: defaultDimensions,
		},
		Events: EventsConfig{
			Provider: defaultEventsProvider,
			Topic:    defaultEventsTopic,
		},
	}
}
