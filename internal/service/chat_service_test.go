package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-support-agent/internal/dto"
	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/rag/index"
	"course-support-agent/pkg/rag/pipeline"
)

type stubRetriever struct {
	units []entity.RetrievableUnit
	err   error
}

func (s *stubRetriever) Search(ctx context.Context, query string, k int) ([]entity.RetrievableUnit, error) {
	return s.units, s.err
}

type stubJudge struct {
	relevant bool
	score    float64
}

func (s *stubJudge) Assess(ctx context.Context, query string, units []entity.RetrievableUnit) (bool, float64) {
	return s.relevant, s.score
}

type stubGenerator struct {
	answer string
}

func (s *stubGenerator) Generate(ctx context.Context, query string, units []entity.RetrievableUnit, language string) (string, error) {
	return s.answer, nil
}

func newService(r *stubRetriever, j *stubJudge, g *stubGenerator) IChatService {
	log := logger.NewNopLogger()
	return NewChatService(pipeline.New(r, j, g, nil, log), log)
}

func TestAskRelevantQuestion(t *testing.T) {
	svc := newService(
		&stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}},
		&stubJudge{relevant: true, score: 0.9},
		&stubGenerator{answer: "here is what we offer"},
	)

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "poultry courses?", Language: "english"})
	require.NoError(t, err)
	assert.Equal(t, "here is what we offer", res.Response)
	assert.True(t, res.HasRelevantInfo)
	assert.Equal(t, 0.9, res.RelevanceScore)
	assert.Equal(t, "english", res.Language)
}

func TestAskOffTopicQuestion(t *testing.T) {
	svc := newService(
		&stubRetriever{units: []entity.RetrievableUnit{{Text: "a course"}}},
		&stubJudge{relevant: false, score: 0.3},
		&stubGenerator{answer: "never used"},
	)

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "weather today?", Language: "tamil"})
	require.NoError(t, err)
	assert.False(t, res.HasRelevantInfo)
	assert.NotEqual(t, "never used", res.Response)
	assert.NotEmpty(t, res.Response)
	assert.Equal(t, "tamil", res.Language)
}

func TestAskRetrievalFailure(t *testing.T) {
	svc := newService(
		&stubRetriever{err: index.ErrRetrievalUnavailable},
		&stubJudge{},
		&stubGenerator{},
	)

	res, err := svc.Ask(context.Background(), &dto.AskRequest{Question: "anything"})
	require.Error(t, err)
	assert.ErrorIs(t, err, index.ErrRetrievalUnavailable)
	assert.Nil(t, res)
}
