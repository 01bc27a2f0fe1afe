package config

import (
	"os"
	"sync"
)

type AIConfig struct {
	APIURL string
	APIKey string
	Model  string
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		url := os.Getenv("AI_API_URL")
		if url == "" {
			url = "https://openrouter.ai/api/v1/chat/completions"
		}
		model := os.Getenv("AI_MODEL")
		if model == "" {
			model = "openai/gpt-4o-mini"
		}
		aiConfig = &AIConfig{
			APIURL: url,
			APIKey: os.Getenv("AI_API_KEY"),
			Model:  model,
		}
	})
	return aiConfig
}
