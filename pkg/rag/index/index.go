package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/internal/repository/contract"
	"course-support-agent/pkg/embedding"

	"github.com/patrickmn/go-cache"
)

// ErrRetrievalUnavailable marks embedding or index failures at build or
// query time. The pipeline does not retry; the request fails closed.
var ErrRetrievalUnavailable = errors.New("retrieval unavailable")

// Index is the catalog's nearest-neighbor lookup. Built once at startup,
// read-only afterwards, safe for concurrent searches.
type Index struct {
	repo       contract.CatalogUnitRepository
	embedder   embedding.EmbeddingProvider
	queryCache *cache.Cache
	log        logger.ILogger
}

func NewIndex(repo contract.CatalogUnitRepository, embedder embedding.EmbeddingProvider, log logger.ILogger) *Index {
	// Identical queries re-embed to identical vectors, so cache query
	// embeddings for a while to save round-trips to the embedding service.
	queryCache := cache.New(1*time.Hour, 10*time.Minute)
	return &Index{
		repo:       repo,
		embedder:   embedder,
		queryCache: queryCache,
		log:        log,
	}
}

// Build embeds every retrievable unit and replaces the stored catalog
// wholesale. Synchronous and blocking; expected to run once at startup.
func (ix *Index) Build(ctx context.Context, units []entity.RetrievableUnit) error {
	if err := ix.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRetrievalUnavailable, err)
	}

	embeddings := make([][]float32, len(units))
	for i, unit := range units {
		vector, err := ix.embedder.Generate(unit.Text, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("%w: embed course %d: %w", ErrRetrievalUnavailable, unit.Metadata.CourseNo, err)
		}
		embeddings[i] = vector
	}

	if err := ix.repo.ReplaceAll(ctx, units, embeddings); err != nil {
		return fmt.Errorf("%w: store catalog: %w", ErrRetrievalUnavailable, err)
	}

	ix.log.Info("index", "catalog index built", map[string]interface{}{
		"units": len(units),
	})
	return nil
}

// Search embeds the query and returns the k most similar units, most
// similar first. An empty corpus yields an empty result, not an error.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]entity.RetrievableUnit, error) {
	vector, err := ix.queryEmbedding(query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %w", ErrRetrievalUnavailable, err)
	}

	scored, err := ix.repo.SearchSimilar(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("%w: search catalog: %w", ErrRetrievalUnavailable, err)
	}

	units := make([]entity.RetrievableUnit, len(scored))
	for i, s := range scored {
		units[i] = s.Unit
	}
	return units, nil
}

func (ix *Index) queryEmbedding(query string) ([]float32, error) {
	if cached, found := ix.queryCache.Get(query); found {
		return cached.([]float32), nil
	}

	vector, err := ix.embedder.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}

	ix.queryCache.Set(query, vector, cache.DefaultExpiration)
	return vector, nil
}
