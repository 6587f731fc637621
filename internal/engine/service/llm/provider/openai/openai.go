package openai

import (
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/helper"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/spi"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

const Name = "openai"

// New returns the OpenAI plugin. The first model is the chronos default.
func New() spi.ProviderPlugin {
	return helper.NewCompatiblePlugin(Name, options.ProviderConfig{
		BaseURL: "https://api.openai.com/v1",
		APIKey:  "${OPENAI_API_KEY}",
		Models: []options.ModelDefinition{
			{ID: options.DefaultModel, Name: "GPT-4.1 Mini", ContextWindow: 1047576, MaxTokens: 32768},
			{ID: "gpt-4.1", Name: "GPT-4.1", ContextWindow: 1047576, MaxTokens: 32768},
			{ID: "gpt-4o", Name: "GPT-4o", ContextWindow: 131072, MaxTokens: 8192},
			{ID: "gpt-4o-mini", Name: "GPT-4o Mini", ContextWindow: 131072, MaxTokens: 8192},
		},
	})
}
