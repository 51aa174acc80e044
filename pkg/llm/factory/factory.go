package factory

import (
	"fmt"

	"course-support-agent/pkg/llm"
	"course-support-agent/pkg/llm/gemini"
	"course-support-agent/pkg/llm/huggingface"
	"course-support-agent/pkg/llm/ollama"
)

// NewLLMProvider builds a generative model client from configuration.
// apiKey is ignored for local providers; baseURL is ignored for gemini.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
