package response

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/llm"
)

// ErrGenerationFailed marks a failed answer-generation model call. It
// propagates to the caller; the pipeline never downgrades it into the
// static fallback text.
var ErrGenerationFailed = errors.New("answer generation failed")

// Generator composes the final answer from the retrieved units, grounded
// in their full text and rendered through a language-specific template.
type Generator struct {
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		log:         log,
	}
}

// Generate issues one model call with the fully substituted prompt and
// returns the raw model output, unmodified. Only invoked after a positive
// relevance verdict.
func (g *Generator) Generate(ctx context.Context, query string, units []entity.RetrievableUnit, language string) (string, error) {
	contextText := g.buildContext(units)
	prompt := g.BuildPrompt(query, contextText, language)

	answer, err := g.llmProvider.Generate(ctx, prompt)
	if err != nil {
		g.log.Error("generator", "model call failed", map[string]interface{}{
			"error":    err.Error(),
			"language": language,
		})
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	g.log.Info("generator", "answer generated", map[string]interface{}{
		"language": NormalizeLanguage(language),
		"units":    len(units),
	})
	return answer, nil
}

// BuildPrompt substitutes context and query into the language template.
// The instruction is prepended and the template repeats the language
// directive, so the prompt always carries it twice.
func (g *Generator) BuildPrompt(query, contextText, language string) string {
	instruction, template := resolveTemplates(language)

	body := strings.NewReplacer(
		"{context}", contextText,
		"{query}", query,
	).Replace(template)

	return instruction + "\n\n" + body
}

// buildContext concatenates the full text of every retrieved unit. Unlike
// the relevance judge, nothing is truncated here.
func (g *Generator) buildContext(units []entity.RetrievableUnit) string {
	texts := make([]string, len(units))
	for i, unit := range units {
		texts[i] = unit.Text
	}
	return strings.Join(texts, "\n\n")
}
