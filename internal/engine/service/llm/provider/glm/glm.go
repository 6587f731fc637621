package glm

import (
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/helper"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/spi"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

const Name = "glm"

// New returns the ZhiPu BigModel plugin.
func New() spi.ProviderPlugin {
	return helper.NewCompatiblePlugin(Name, options.ProviderConfig{
		BaseURL: "https://open.bigmodel.cn/api/paas/v4",
		APIKey:  "${ZHIPU_API_KEY}",
		Models: []options.ModelDefinition{
			{ID: "glm-4-plus", Name: "GLM-4 Plus", ContextWindow: 131072, MaxTokens: 4096},
			{ID: "glm-4-flash", Name: "GLM-4 Flash", ContextWindow: 131072, MaxTokens: 4096},
		},
	})
}
