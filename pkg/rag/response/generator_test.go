package response

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/llm"
)

type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		s.lastPrompt = history[len(history)-1].Content
	}
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestBuildPrompt(t *testing.T) {
	gen := NewGenerator(&stubLLM{}, logger.NewNopLogger())

	prompt := gen.BuildPrompt("How do I start a poultry farm?", "Course Title: Poultry Farming", "hindi")

	assert.True(t, strings.HasPrefix(prompt, languageInstructions[LangHindi]))
	assert.Contains(t, prompt, "Course Title: Poultry Farming")
	assert.Contains(t, prompt, "How do I start a poultry farm?")
	assert.NotContains(t, prompt, "{context}")
	assert.NotContains(t, prompt, "{query}")
}

func TestBuildPromptUnknownLanguageUsesEnglish(t *testing.T) {
	gen := NewGenerator(&stubLLM{}, logger.NewNopLogger())

	prompt := gen.BuildPrompt("q", "ctx", "french")

	assert.True(t, strings.HasPrefix(prompt, languageInstructions[LangEnglish]))
	assert.Contains(t, prompt, "Answer in English")
}

func TestGenerateJoinsFullUnitTexts(t *testing.T) {
	model := &stubLLM{reply: "an answer"}
	gen := NewGenerator(model, logger.NewNopLogger())

	units := []entity.RetrievableUnit{
		{Text: "first unit text"},
		{Text: "second unit text"},
	}

	answer, err := gen.Generate(context.Background(), "question", units, "english")
	require.NoError(t, err)
	assert.Equal(t, "an answer", answer)
	assert.Contains(t, model.lastPrompt, "first unit text\n\nsecond unit text")
}

func TestGenerateWrapsModelFailure(t *testing.T) {
	model := &stubLLM{err: errors.New("upstream timeout")}
	gen := NewGenerator(model, logger.NewNopLogger())

	_, err := gen.Generate(context.Background(), "question", nil, "english")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("Tamil"))
	assert.True(t, IsSupported("  english "))
	assert.False(t, IsSupported("spanish"))
}
