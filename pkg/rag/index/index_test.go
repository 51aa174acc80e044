package index

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/internal/repository/contract"
	"course-support-agent/pkg/embedding"
)

type stubEmbedder struct {
	err   error
	calls []string
}

func (s *stubEmbedder) Generate(text, taskType string) ([]float32, error) {
	s.calls = append(s.calls, taskType+":"+text)
	if s.err != nil {
		return nil, s.err
	}
	return []float32{float32(len(text)), 0, 0}, nil
}

type stubRepo struct {
	schemaErr  error
	replaceErr error
	searchErr  error
	stored     []entity.RetrievableUnit
	results    []*contract.ScoredCatalogUnit
	lastLimit  int
}

func (s *stubRepo) EnsureSchema(ctx context.Context) error { return s.schemaErr }

func (s *stubRepo) ReplaceAll(ctx context.Context, units []entity.RetrievableUnit, embeddings [][]float32) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.stored = units
	return nil
}

func (s *stubRepo) Count(ctx context.Context) (int64, error) { return int64(len(s.stored)), nil }

func (s *stubRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredCatalogUnit, error) {
	s.lastLimit = limit
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.results, nil
}

func TestBuildEmbedsEveryUnit(t *testing.T) {
	embedder := &stubEmbedder{}
	repo := &stubRepo{}
	ix := NewIndex(repo, embedder, logger.NewNopLogger())

	units := []entity.RetrievableUnit{
		{Text: "aa"},
		{Text: "bbb"},
	}

	err := ix.Build(context.Background(), units)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 2)
	assert.Equal(t, []string{
		embedding.TaskRetrievalDocument + ":aa",
		embedding.TaskRetrievalDocument + ":bbb",
	}, embedder.calls)
}

func TestBuildEmbeddingFailure(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("model down")}
	ix := NewIndex(&stubRepo{}, embedder, logger.NewNopLogger())

	err := ix.Build(context.Background(), []entity.RetrievableUnit{{Text: "aa"}})
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
}

func TestBuildStoreFailure(t *testing.T) {
	repo := &stubRepo{replaceErr: errors.New("db down")}
	ix := NewIndex(repo, &stubEmbedder{}, logger.NewNopLogger())

	err := ix.Build(context.Background(), []entity.RetrievableUnit{{Text: "aa"}})
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
}

func TestSearchReturnsUnitsInOrder(t *testing.T) {
	repo := &stubRepo{results: []*contract.ScoredCatalogUnit{
		{Unit: entity.RetrievableUnit{Text: "closest"}, Similarity: 0.9},
		{Unit: entity.RetrievableUnit{Text: "second"}, Similarity: 0.7},
	}}
	ix := NewIndex(repo, &stubEmbedder{}, logger.NewNopLogger())

	units, err := ix.Search(context.Background(), "query", 5)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "closest", units[0].Text)
	assert.Equal(t, "second", units[1].Text)
	assert.Equal(t, 5, repo.lastLimit)
}

func TestSearchCachesQueryEmbedding(t *testing.T) {
	embedder := &stubEmbedder{}
	ix := NewIndex(&stubRepo{}, embedder, logger.NewNopLogger())

	_, err := ix.Search(context.Background(), "same query", 5)
	require.NoError(t, err)
	_, err = ix.Search(context.Background(), "same query", 5)
	require.NoError(t, err)

	assert.Len(t, embedder.calls, 1)
	assert.Equal(t, embedding.TaskRetrievalQuery+":same query", embedder.calls[0])
}

func TestSearchRepoFailure(t *testing.T) {
	repo := &stubRepo{searchErr: errors.New("db down")}
	ix := NewIndex(repo, &stubEmbedder{}, logger.NewNopLogger())

	_, err := ix.Search(context.Background(), "query", 5)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
}
