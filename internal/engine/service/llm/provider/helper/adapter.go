package helper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bytedance/gg/gptr"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
)

// NewOpenAICompatibleChatModel creates an Eino ChatModel using the OpenAI-compatible API.
// This is the common path for providers that expose an OpenAI-compatible endpoint
// (OpenAI, Kimi/Moonshot, GLM/ZhiPu, etc.).
func NewOpenAICompatibleChatModel(ctx context.Context, conn *entity.ConnInfo, params *entity.LLMParams) (model.BaseChatModel, error) {
	if conn == nil || conn.Model == "" {
		return nil, fmt.Errorf("openai-compatible model requires a model id")
	}

	cfg := &einoOpenAI.ChatModelConfig{
		Model:  conn.Model,
		APIKey: conn.APIKey,
		ResponseFormat: &einoOpenAI.ChatCompletionResponseFormat{
			Type: einoOpenAI.ChatCompletionResponseFormatTypeText,
		},
	}

	// Set BaseURL only for non-default OpenAI endpoints.
	if conn.BaseURL != "" {
		cfg.BaseURL = conn.BaseURL
	}

	if len(conn.Headers) > 0 {
		cfg.HTTPClient = &http.Client{Transport: &headerTransport{headers: conn.Headers, next: http.DefaultTransport}}
	}

	applyParamsToOpenAIChatModelConfig(cfg, params)

	return einoOpenAI.NewChatModel(ctx, cfg)
}

func applyParamsToOpenAIChatModelConfig(cfg *einoOpenAI.ChatModelConfig, params *entity.LLMParams) {
	if params == nil {
		return
	}

	if params.Temperature != nil {
		cfg.Temperature = params.Temperature
	}
	if params.MaxTokens != 0 {
		cfg.MaxTokens = gptr.Of(params.MaxTokens)
	}
	cfg.TopP = params.TopP
}

// headerTransport adds the provider's extra headers to every request.
type headerTransport struct {
	headers map[string]string
	next    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, ResolveEnvValue(v))
	}
	return t.next.RoundTrip(req)
}
