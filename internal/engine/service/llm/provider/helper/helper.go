package helper

import (
	"os"
	"strings"

	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/pkg/options"
)

type BasePlugin struct {
	PluginName string
}

func (b *BasePlugin) Name() string {
	return b.PluginName
}

// DefaultConfig returns the default configuration for the provider.
func (b *BasePlugin) DefaultConfig() *options.ProviderConfig {
	return &options.ProviderConfig{}
}

// ConnInfoFromConfig resolves the API key reference and pins the model ID.
func ConnInfoFromConfig(providerID string, cfg *options.ProviderConfig, modelID string) *entity.ConnInfo {
	return &entity.ConnInfo{
		ProviderID: providerID,
		BaseURL:    cfg.BaseURL,
		APIKey:     ResolveEnvValue(cfg.APIKey),
		Model:      modelID,
		Headers:    cfg.Headers,
	}
}

// ResolveEnvValue resolves "${ENV_VAR}" references in a string.
func ResolveEnvValue(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return os.Getenv(envKey)
	}
	return s
}

// EnvKeyName returns the variable name of a "${ENV_VAR}" reference, or "".
func EnvKeyName(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return s[2 : len(s)-1]
	}
	return ""
}
