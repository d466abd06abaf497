package knowledge

import "github.com/philippgille/chromem-go"

type Option func(*Config)

// WithCollectionName sets the name of the backing collection.
func WithCollectionName(name string) Option {
	return func(c *Config) {
		c.collectionName = name
	}
}

// WithEmbeddingFunc sets the embedding function used for entries and queries.
// When nil, chromem falls back to its default OpenAI embedding provider.
func WithEmbeddingFunc(fn chromem.EmbeddingFunc) Option {
	return func(c *Config) {
		c.embeddingFunc = fn
	}
}

// WithTopK sets the default number of entries returned per query.
func WithTopK(topK int) Option {
	return func(c *Config) {
		c.topK = topK
	}
}
