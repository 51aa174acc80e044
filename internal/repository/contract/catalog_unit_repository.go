package contract

import (
	"context"

	"course-support-agent/internal/entity"
)

// ScoredCatalogUnit wraps a RetrievableUnit with its cosine similarity
type ScoredCatalogUnit struct {
	Unit       entity.RetrievableUnit
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type CatalogUnitRepository interface {
	// EnsureSchema prepares the pgvector extension and the catalog_units table
	EnsureSchema(ctx context.Context) error
	// ReplaceAll rebuilds the catalog wholesale inside one transaction.
	// embeddings[i] belongs to units[i]; position follows slice order.
	ReplaceAll(ctx context.Context, units []entity.RetrievableUnit, embeddings [][]float32) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilar returns the limit nearest units by cosine similarity,
	// ties broken by insertion position
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredCatalogUnit, error)
}
