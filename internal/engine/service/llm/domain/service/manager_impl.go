package service

import (
	"context"
	"fmt"
	"sync"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/helper"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/spi"
	"github.com/kiosk404/chronos/internal/pkg/options"
	"github.com/kiosk404/chronos/pkg/logger"
)

const moduleName = "llm"

// Compile-time interface check.
var _ ModelManager = (*modelManagerImpl)(nil)

// modelManagerImpl builds chat models from the plugins in a provider.Registry,
// applying the user's provider overrides from ModelOptions.
type modelManagerImpl struct {
	opts     *options.ModelOptions
	registry *provider.Registry

	// pluginCache caches plugin instances by provider name.
	pluginCache sync.Map
}

func NewModelManager(opts *options.ModelOptions, registry *provider.Registry) ModelManager {
	if opts == nil {
		opts = options.NewModelOptions()
	}
	return &modelManagerImpl{
		opts:     opts,
		registry: registry,
	}
}

func (m *modelManagerImpl) ListProviders(ctx context.Context) ([]*ProviderInfo, error) {
	infos := make([]*ProviderInfo, 0, m.registry.Len())
	for _, name := range m.registry.List() {
		cfg, err := m.ResolveProvider(ctx, name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, &ProviderInfo{Name: name, Config: cfg})
	}
	return infos, nil
}

func (m *modelManagerImpl) ResolveProvider(_ context.Context, name string) (*options.ProviderConfig, error) {
	plugin, err := m.getPlugin(name)
	if err != nil {
		return nil, err
	}
	return m.opts.ResolveProvider(name, plugin.DefaultConfig())
}

// BuildChatModel always creates a fresh instance.
func (m *modelManagerImpl) BuildChatModel(ctx context.Context, ref entity.ModelRef, params *entity.LLMParams) (einoModel.BaseChatModel, error) {
	plugin, err := m.getPlugin(ref.Provider)
	if err != nil {
		return nil, err
	}

	cfg, err := m.opts.ResolveProvider(ref.Provider, plugin.DefaultConfig())
	if err != nil {
		return nil, err
	}

	modelID := ref.Model
	if modelID == "" && len(cfg.Models) > 0 {
		modelID = cfg.Models[0].ID
	}
	if modelID == "" {
		return nil, fmt.Errorf("provider %s: no model configured", ref.Provider)
	}

	if params == nil && m.opts.MaxTokens > 0 {
		params = &entity.LLMParams{MaxTokens: m.opts.MaxTokens}
	}

	conn := helper.ConnInfoFromConfig(ref.Provider, cfg, modelID)
	logger.DebugX(moduleName, "[LLM] building chat model %s/%s (baseURL=%s)", ref.Provider, modelID, conn.BaseURL)

	cm, err := plugin.BuildChatModel(ctx, conn, params)
	if err != nil {
		logger.ErrorX(moduleName, "[LLM] build chat model %s/%s failed: %v", ref.Provider, modelID, err)
		return nil, fmt.Errorf("build chat model for %s/%s: %w", ref.Provider, modelID, err)
	}
	return cm, nil
}

func (m *modelManagerImpl) DefaultModelRef() entity.ModelRef {
	return entity.ModelRef{
		Provider: m.opts.DefaultProvider,
		Model:    m.opts.DefaultModel,
	}
}

// getPlugin returns the cached plugin for the given provider, creating it on first use.
func (m *modelManagerImpl) getPlugin(name string) (spi.ProviderPlugin, error) {
	if cached, ok := m.pluginCache.Load(name); ok {
		return cached.(spi.ProviderPlugin), nil
	}

	factory, err := m.registry.Get(name)
	if err != nil {
		return nil, err
	}

	actual, _ := m.pluginCache.LoadOrStore(name, factory())
	return actual.(spi.ProviderPlugin), nil
}
