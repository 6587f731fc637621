package kimi

import (
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/helper"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/spi"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

const Name = "kimi"

// New returns the Moonshot plugin.
func New() spi.ProviderPlugin {
	return helper.NewCompatiblePlugin(Name, options.ProviderConfig{
		BaseURL: "https://api.moonshot.cn/v1",
		APIKey:  "${MOONSHOT_API_KEY}",
		Models: []options.ModelDefinition{
			{ID: "moonshot-v1-8k", Name: "Moonshot v1 8K", ContextWindow: 8192, MaxTokens: 4096},
			{ID: "kimi-k2-0711-preview", Name: "Kimi K2", ContextWindow: 131072, MaxTokens: 8192},
		},
	})
}
