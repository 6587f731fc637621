package deepseek

import (
	"context"
	"fmt"

	einoDeepseek "github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino/components/model"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/helper"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/spi"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

const Name = "deepseek"

var _ spi.ProviderPlugin = (*Plugin)(nil)

type Plugin struct {
	helper.BasePlugin
}

func New() spi.ProviderPlugin {
	return &Plugin{
		BasePlugin: helper.BasePlugin{PluginName: Name},
	}
}

// BuildChatModel uses the dedicated DeepSeek client.
func (p *Plugin) BuildChatModel(ctx context.Context, conn *entity.ConnInfo, params *entity.LLMParams) (model.BaseChatModel, error) {
	if conn == nil || conn.Model == "" {
		return nil, fmt.Errorf("%s: model id is required", Name)
	}

	conf := &einoDeepseek.ChatModelConfig{
		APIKey:             conn.APIKey,
		Model:              conn.Model,
		Temperature:        0.7,
		ResponseFormatType: einoDeepseek.ResponseFormatTypeText,
	}

	if conn.BaseURL != "" {
		conf.BaseURL = conn.BaseURL
	}

	applyParamsToDeepseekConfig(conf, params)

	return einoDeepseek.NewChatModel(ctx, conf)
}

func applyParamsToDeepseekConfig(conf *einoDeepseek.ChatModelConfig, params *entity.LLMParams) {
	if params == nil {
		return
	}

	if params.Temperature != nil {
		conf.Temperature = *params.Temperature
	}

	if params.MaxTokens != 0 {
		conf.MaxTokens = params.MaxTokens
	}
}

func (p *Plugin) DefaultConfig() *options.ProviderConfig {
	return &options.ProviderConfig{
		BaseURL: "https://api.deepseek.com/v1",
		APIKey:  "${DEEPSEEK_API_KEY}",
		API:     "openai-completions",
		Models: []options.ModelDefinition{
			{ID: "deepseek-chat", Name: "DeepSeek Chat", ContextWindow: 65536, MaxTokens: 8192},
		},
	}
}
