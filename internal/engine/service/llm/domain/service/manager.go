package service

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

// ProviderInfo describes one registered provider after user overrides are applied.
type ProviderInfo struct {
	Name   string
	Config *options.ProviderConfig
}

type ModelManager interface {
	// ListProviders lists every registered provider with its effective configuration.
	ListProviders(ctx context.Context) ([]*ProviderInfo, error)
	// ResolveProvider returns the effective configuration of a single provider.
	ResolveProvider(ctx context.Context, name string) (*options.ProviderConfig, error)

	// BuildChatModel creates a new Eino BaseChatModel for ref.
	// params may be nil, in which case provider defaults are used.
	// Callers needing tool-calling should assert ToolCallingChatModel on the result.
	BuildChatModel(ctx context.Context, ref entity.ModelRef, params *entity.LLMParams) (model.BaseChatModel, error)
	// DefaultModelRef returns the configured default provider and model.
	DefaultModelRef() entity.ModelRef
}
