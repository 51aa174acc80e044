package pipeline

import (
	"context"
	"fmt"
	"strings"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/rag/response"
)

// TopK is the default number of catalog units retrieved per question.
const TopK = 5

// Retriever finds the catalog units most similar to a query.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]entity.RetrievableUnit, error)
}

// RelevanceJudge decides whether retrieved units can answer the query.
// It absorbs its own failures and always produces a verdict.
type RelevanceJudge interface {
	Assess(ctx context.Context, query string, units []entity.RetrievableUnit) (bool, float64)
}

// AnswerGenerator produces a grounded answer from retrieved units.
type AnswerGenerator interface {
	Generate(ctx context.Context, query string, units []entity.RetrievableUnit, language string) (string, error)
}

// FallbackFunc returns the static "no information" answer for a query.
// It must be total: no error, never empty.
type FallbackFunc func(query, language string) string

// handler runs one stage against the state and returns the id of the next
// stage to visit.
type handler func(ctx context.Context, s *State) (Stage, error)

// Option tunes pipeline construction.
type Option func(*Pipeline)

// WithTopK overrides the retrieval depth.
func WithTopK(k int) Option {
	return func(p *Pipeline) {
		if k > 0 {
			p.topK = k
		}
	}
}

// Pipeline is the question-answering graph. Construct once, run per
// request; a run traverses Start to End without revisiting a stage.
type Pipeline struct {
	handlers map[Stage]handler
	topK     int
	log      logger.ILogger
}

func New(retriever Retriever, judge RelevanceJudge, generator AnswerGenerator, fallback FallbackFunc, log logger.ILogger, options ...Option) *Pipeline {
	if fallback == nil {
		fallback = response.Fallback
	}

	p := &Pipeline{topK: TopK, log: log}
	for _, opt := range options {
		opt(p)
	}
	p.handlers = map[Stage]handler{
		StageStart: func(ctx context.Context, s *State) (Stage, error) {
			return StageRetrieve, nil
		},
		StageRetrieve: func(ctx context.Context, s *State) (Stage, error) {
			units, err := retriever.Search(ctx, s.Query, p.topK)
			if err != nil {
				return StageEnd, err
			}
			s.Units = units
			return StageDetectLanguage, nil
		},
		StageDetectLanguage: func(ctx context.Context, s *State) (Stage, error) {
			// The caller states the language; nothing is inferred from the
			// query text. Blank means English. The value is echoed as given;
			// the template tables normalize on lookup.
			s.Language = strings.TrimSpace(s.Language)
			if s.Language == "" {
				s.Language = response.LangEnglish
			}
			return StageCheckRelevance, nil
		},
		StageCheckRelevance: func(ctx context.Context, s *State) (Stage, error) {
			s.HasRelevantInfo, s.RelevanceScore = judge.Assess(ctx, s.Query, s.Units)
			if s.HasRelevantInfo {
				return StageGenerateAnswer, nil
			}
			return StageGenerateFallback, nil
		},
		StageGenerateAnswer: func(ctx context.Context, s *State) (Stage, error) {
			answer, err := generator.Generate(ctx, s.Query, s.Units, s.Language)
			if err != nil {
				return StageEnd, err
			}
			s.Response = answer
			return StageEnd, nil
		},
		StageGenerateFallback: func(ctx context.Context, s *State) (Stage, error) {
			s.Response = fallback(s.Query, s.Language)
			return StageEnd, nil
		},
	}
	return p
}

// Run executes the graph for one question and returns the final state.
// Retrieval and generation failures abort the run; a degraded relevance
// verdict does not.
func (p *Pipeline) Run(ctx context.Context, query, language string) (*State, error) {
	s := &State{Query: query, Language: language}

	for stage := StageStart; stage != StageEnd; {
		h, ok := p.handlers[stage]
		if !ok {
			return nil, fmt.Errorf("no handler for stage %s", stage)
		}

		next, err := h(ctx, s)
		if err != nil {
			p.log.Error("pipeline", "stage failed", map[string]interface{}{
				"stage": stage.String(),
				"error": err.Error(),
			})
			return nil, err
		}

		p.log.Debug("pipeline", "stage complete", map[string]interface{}{
			"stage": stage.String(),
			"next":  next.String(),
		})
		stage = next
	}

	return s, nil
}
