package service

import (
	"context"

	"course-support-agent/internal/dto"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/pkg/rag/pipeline"
)

type IChatService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
}

type chatService struct {
	pipeline *pipeline.Pipeline
	log      logger.ILogger
}

func NewChatService(p *pipeline.Pipeline, log logger.ILogger) IChatService {
	return &chatService{
		pipeline: p,
		log:      log,
	}
}

// Ask runs one question through the answering pipeline. Retrieval and
// generation failures surface as errors; an out-of-scope question is a
// normal response carrying the static fallback text.
func (s *chatService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	state, err := s.pipeline.Run(ctx, req.Question, req.Language)
	if err != nil {
		return nil, err
	}

	s.log.Info("chat", "question answered", map[string]interface{}{
		"language":          state.Language,
		"has_relevant_info": state.HasRelevantInfo,
		"relevance_score":   state.RelevanceScore,
	})

	return &dto.AskResponse{
		Response:        state.Response,
		Language:        state.Language,
		HasRelevantInfo: state.HasRelevantInfo,
		RelevanceScore:  state.RelevanceScore,
	}, nil
}
