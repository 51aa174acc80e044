package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/rag/index"
	"course-support-agent/pkg/rag/response"
)

type stubRetriever struct {
	units []entity.RetrievableUnit
	err   error
	lastK int
}

func (s *stubRetriever) Search(ctx context.Context, query string, k int) ([]entity.RetrievableUnit, error) {
	s.lastK = k
	return s.units, s.err
}

type stubJudge struct {
	relevant bool
	score    float64
	called   bool
}

func (s *stubJudge) Assess(ctx context.Context, query string, units []entity.RetrievableUnit) (bool, float64) {
	s.called = true
	return s.relevant, s.score
}

type stubGenerator struct {
	answer   string
	err      error
	language string
	called   bool
}

func (s *stubGenerator) Generate(ctx context.Context, query string, units []entity.RetrievableUnit, language string) (string, error) {
	s.called = true
	s.language = language
	return s.answer, s.err
}

func newPipeline(r *stubRetriever, j *stubJudge, g *stubGenerator) *Pipeline {
	return New(r, j, g, nil, logger.NewNopLogger())
}

func TestRunRelevantPath(t *testing.T) {
	retriever := &stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}}
	judge := &stubJudge{relevant: true, score: 0.92}
	generator := &stubGenerator{answer: "grounded answer"}

	state, err := newPipeline(retriever, judge, generator).Run(context.Background(), "question", "tamil")
	require.NoError(t, err)
	assert.Equal(t, TopK, retriever.lastK)

	assert.Equal(t, "grounded answer", state.Response)
	assert.True(t, state.HasRelevantInfo)
	assert.Equal(t, 0.92, state.RelevanceScore)
	assert.Equal(t, "tamil", state.Language)
	assert.Equal(t, "tamil", generator.language)
}

func TestRunFallbackPath(t *testing.T) {
	retriever := &stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}}
	judge := &stubJudge{relevant: false, score: 0.3}
	generator := &stubGenerator{answer: "should not be used"}

	state, err := newPipeline(retriever, judge, generator).Run(context.Background(), "what is the weather", "hindi")
	require.NoError(t, err)

	assert.False(t, generator.called)
	assert.False(t, state.HasRelevantInfo)
	assert.Equal(t, response.Fallback("what is the weather", "hindi"), state.Response)
}

func TestRunEmptyRetrievalStillJudged(t *testing.T) {
	retriever := &stubRetriever{}
	judge := &stubJudge{relevant: false, score: 0.0}
	generator := &stubGenerator{}

	state, err := newPipeline(retriever, judge, generator).Run(context.Background(), "anything", "english")
	require.NoError(t, err)

	assert.True(t, judge.called)
	assert.False(t, generator.called)
	assert.NotEmpty(t, state.Response)
}

func TestRunRetrievalFailureAborts(t *testing.T) {
	retriever := &stubRetriever{err: index.ErrRetrievalUnavailable}
	judge := &stubJudge{}
	generator := &stubGenerator{}

	state, err := newPipeline(retriever, judge, generator).Run(context.Background(), "question", "english")
	require.Error(t, err)
	assert.ErrorIs(t, err, index.ErrRetrievalUnavailable)
	assert.Nil(t, state)
	assert.False(t, judge.called)
}

func TestRunGenerationFailureIsNotDowngraded(t *testing.T) {
	retriever := &stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}}
	judge := &stubJudge{relevant: true, score: 0.9}
	generator := &stubGenerator{err: errors.New("model failed")}

	state, err := newPipeline(retriever, judge, generator).Run(context.Background(), "question", "english")
	require.Error(t, err)
	assert.Nil(t, state)
}

func TestRunBlankLanguageDefaultsToEnglish(t *testing.T) {
	retriever := &stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}}
	judge := &stubJudge{relevant: true, score: 0.9}
	generator := &stubGenerator{answer: "ok"}

	state, err := newPipeline(retriever, judge, generator).Run(context.Background(), "question", "  ")
	require.NoError(t, err)
	assert.Equal(t, response.LangEnglish, state.Language)
	assert.Equal(t, response.LangEnglish, generator.language)
}

func TestWithTopK(t *testing.T) {
	retriever := &stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}}
	judge := &stubJudge{relevant: true, score: 0.9}
	generator := &stubGenerator{answer: "ok"}

	p := New(retriever, judge, generator, nil, logger.NewNopLogger(), WithTopK(3))
	_, err := p.Run(context.Background(), "question", "english")
	require.NoError(t, err)
	assert.Equal(t, 3, retriever.lastK)
}

func TestRunUnsupportedLanguageEchoedNotRejected(t *testing.T) {
	retriever := &stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}}
	judge := &stubJudge{relevant: false, score: 0.3}

	state, err := newPipeline(retriever, judge, &stubGenerator{}).Run(context.Background(), "question", "German")
	require.NoError(t, err)
	assert.Equal(t, "German", state.Language)
	assert.Equal(t, response.Fallback("question", "german"), state.Response)
}
