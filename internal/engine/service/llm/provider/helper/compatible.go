package helper

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

// CompatiblePlugin serves any provider that speaks the OpenAI chat
// completions API. Only the defaults differ between such providers.
type CompatiblePlugin struct {
	BasePlugin
	defaults options.ProviderConfig
}

// NewCompatiblePlugin returns a plugin named name whose DefaultConfig is a
// copy of defaults with API set to "openai-completions".
func NewCompatiblePlugin(name string, defaults options.ProviderConfig) *CompatiblePlugin {
	defaults.API = "openai-completions"
	return &CompatiblePlugin{
		BasePlugin: BasePlugin{PluginName: name},
		defaults:   defaults,
	}
}

func (p *CompatiblePlugin) DefaultConfig() *options.ProviderConfig {
	cfg := p.defaults
	cfg.Models = append([]options.ModelDefinition(nil), p.defaults.Models...)
	return &cfg
}

func (p *CompatiblePlugin) BuildChatModel(ctx context.Context, conn *entity.ConnInfo, params *entity.LLMParams) (model.BaseChatModel, error) {
	return NewOpenAICompatibleChatModel(ctx, conn, params)
}
