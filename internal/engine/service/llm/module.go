package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/service"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider"
	"github.com/kiosk404/chronos/internal/pkg/options"
	"github.com/kiosk404/chronos/pkg/logger"
)

// Config holds the configuration for the LLM module.
type Config struct {
	ModelOptions *options.ModelOptions

	// Registry replaces the in-tree provider registry when set.
	Registry *provider.Registry
}

type CompletedConfig struct {
	*Config
}

// Complete fills defaults.
func (c *Config) Complete() CompletedConfig {
	if c.ModelOptions == nil {
		c.ModelOptions = options.NewModelOptions()
	}
	if c.Registry == nil {
		c.Registry = provider.NewInTreeRegistry()
	}
	return CompletedConfig{c}
}

// Module is the top-level LLM module.
type Module struct {
	Manager  service.ModelManager
	Registry *provider.Registry
}

func (c CompletedConfig) New() (*Module, error) {
	if errs := c.ModelOptions.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid model options: %v", errs)
	}
	logger.Info("[LLM] provider registry initialized with %d plugins", c.Registry.Len())

	return &Module{
		Manager:  service.NewModelManager(c.ModelOptions, c.Registry),
		Registry: c.Registry,
	}, nil
}

// DefaultChatModel builds the chat model named by models.default-provider and
// models.default-model.
func (m *Module) DefaultChatModel(ctx context.Context) (model.BaseChatModel, error) {
	return m.Manager.BuildChatModel(ctx, m.Manager.DefaultModelRef(), nil)
}

// ChatModel builds the chat model for ref.
func (m *Module) ChatModel(ctx context.Context, ref entity.ModelRef) (model.BaseChatModel, error) {
	return m.Manager.BuildChatModel(ctx, ref, nil)
}
