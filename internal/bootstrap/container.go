package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"course-support-agent/internal/config"
	"course-support-agent/internal/controller"
	"course-support-agent/internal/pkg/logger"
	"course-support-agent/internal/repository/contract"
	"course-support-agent/internal/repository/implementation"
	"course-support-agent/internal/service"
	"course-support-agent/pkg/embedding"
	"course-support-agent/pkg/embedding/jina"
	"course-support-agent/pkg/llm/factory"
	"course-support-agent/pkg/rag/index"
	"course-support-agent/pkg/rag/pipeline"
	"course-support-agent/pkg/rag/relevance"
	"course-support-agent/pkg/rag/response"
)

// Container wires the full dependency graph. Built once at startup.
type Container struct {
	Log logger.ILogger
	DB  *gorm.DB

	CatalogUnitRepository contract.CatalogUnitRepository
	Index                 *index.Index
	Pipeline              *pipeline.Pipeline

	ChatService    service.IChatService
	ChatController controller.IChatController
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	embedder, err := newEmbeddingProvider(cfg)
	if err != nil {
		return nil, err
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		llmAPIKey(cfg),
	)
	if err != nil {
		return nil, fmt.Errorf("create llm provider: %w", err)
	}

	catalogUnitRepository := implementation.NewCatalogUnitRepository(db)
	catalogIndex := index.NewIndex(catalogUnitRepository, embedder, log)

	judge := relevance.NewJudge(llmProvider, cfg.Ai.RelevanceFailOpen, log)
	generator := response.NewGenerator(llmProvider, log)

	p := pipeline.New(catalogIndex, judge, generator, response.Fallback, log,
		pipeline.WithTopK(cfg.Ai.RetrievalTopK))

	chatService := service.NewChatService(p, log)
	chatController := controller.NewChatController(chatService)

	return &Container{
		Log:                   log,
		DB:                    db,
		CatalogUnitRepository: catalogUnitRepository,
		Index:                 catalogIndex,
		Pipeline:              p,
		ChatService:           chatService,
		ChatController:        chatController,
	}, nil
}

func newEmbeddingProvider(cfg *config.Config) (embedding.EmbeddingProvider, error) {
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		return embedding.NewGeminiProvider(cfg.Keys.GoogleGemini), nil
	case "ollama":
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel), nil
	case "jina":
		return jina.NewJinaProvider(cfg.Keys.Jina), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Ai.EmbeddingProvider)
	}
}

func llmAPIKey(cfg *config.Config) string {
	switch cfg.Ai.LLMProvider {
	case "huggingface":
		return cfg.Keys.HuggingFace
	default:
		return cfg.Keys.GoogleGemini
	}
}
