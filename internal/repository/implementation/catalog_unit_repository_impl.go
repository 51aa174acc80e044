package implementation

import (
	"context"
	"fmt"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/mapper"
	"course-support-agent/internal/model"
	"course-support-agent/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CatalogUnitRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogUnitMapper
}

func NewCatalogUnitRepository(db *gorm.DB) contract.CatalogUnitRepository {
	return &CatalogUnitRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogUnitMapper(),
	}
}

func (r *CatalogUnitRepositoryImpl) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable pgvector extension: %w", err)
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&model.CatalogUnit{}); err != nil {
		return fmt.Errorf("migrate catalog_units: %w", err)
	}
	return nil
}

// ReplaceAll drops the previous catalog and inserts the new one in a single
// transaction, so readers never observe a half-built index.
func (r *CatalogUnitRepositoryImpl) ReplaceAll(ctx context.Context, units []entity.RetrievableUnit, embeddings [][]float32) error {
	if len(units) != len(embeddings) {
		return fmt.Errorf("units/embeddings length mismatch: %d vs %d", len(units), len(embeddings))
	}

	models := make([]*model.CatalogUnit, len(units))
	for i, unit := range units {
		m, err := r.mapper.ToModel(unit, i, embeddings[i])
		if err != nil {
			return fmt.Errorf("map catalog unit %d: %w", unit.Metadata.CourseNo, err)
		}
		models[i] = m
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM catalog_units").Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(models, 100).Error
	})
}

func (r *CatalogUnitRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CatalogUnit{}).Count(&count).Error
	return count, err
}

// SearchSimilar runs a cosine nearest-neighbor query. Cosine distance in
// pgvector is 1 - cosine_similarity, so similarity = 1 - (embedding <=> q).
// Position breaks similarity ties deterministically (catalog order).
func (r *CatalogUnitRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredCatalogUnit, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.CatalogUnit
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("catalog_units").
		Select("catalog_units.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order(gorm.Expr("embedding <=> ?", queryVector)).
		Order("position ASC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredCatalogUnit, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredCatalogUnit{
			Unit:       r.mapper.ToUnit(&res.CatalogUnit),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
