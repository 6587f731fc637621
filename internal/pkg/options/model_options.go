package options

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"
)

const (
	ModeMerge   = "merge"
	ModeReplace = "replace"

	DefaultProvider = "openai"
	DefaultModel    = "gpt-4.1-mini"

	// ModelEnvVar overrides models.default-model.
	ModelEnvVar = "OPENAI_MODEL"
)

type ModelOptions struct {
	Mode            string                     `json:"mode" mapstructure:"mode"`
	DefaultProvider string                     `json:"default-provider" mapstructure:"default-provider"`
	DefaultModel    string                     `json:"default-model" mapstructure:"default-model"`
	MaxTokens       int                        `json:"max-tokens" mapstructure:"max-tokens"`
	Providers       map[string]*ProviderConfig `json:"providers" mapstructure:"providers"`
}

type ProviderConfig struct {
	BaseURL    string            `json:"base-url" mapstructure:"base-url"`
	APIKey     string            `json:"api-key" mapstructure:"api-key"`
	API        string            `json:"api" mapstructure:"api"`
	AuthHeader *bool             `json:"auth-header" mapstructure:"auth-header"`
	Headers    map[string]string `json:"headers" mapstructure:"headers"`
	Models     []ModelDefinition `json:"models" mapstructure:"models"`
}

type ModelDefinition struct {
	ID            string `json:"id" mapstructure:"id"`
	Name          string `json:"name" mapstructure:"name"`
	ContextWindow int    `json:"context-window" mapstructure:"context-window"`
	MaxTokens     int    `json:"max-tokens" mapstructure:"max-tokens"`
}

func NewModelOptions() *ModelOptions {
	return &ModelOptions{
		Mode:            ModeMerge,
		DefaultProvider: DefaultProvider,
		DefaultModel:    DefaultModel,
		Providers:       make(map[string]*ProviderConfig),
	}
}

func (o *ModelOptions) Validate() []error {
	var errs []error
	if o.Mode != ModeMerge && o.Mode != ModeReplace {
		errs = append(errs, fmt.Errorf("invalid model mode %q, must be 'merge' or 'replace'", o.Mode))
	}
	if o.DefaultProvider == "" {
		errs = append(errs, fmt.Errorf("models.default-provider is required"))
	}
	if o.DefaultModel == "" {
		errs = append(errs, fmt.Errorf("models.default-model is required"))
	}
	if o.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("models.max-tokens must not be negative"))
	}
	for id, p := range o.Providers {
		if p == nil {
			errs = append(errs, fmt.Errorf("provider %q: empty configuration", id))
			continue
		}
		if o.Mode == ModeReplace && p.BaseURL == "" {
			errs = append(errs, fmt.Errorf("provider %q, base-url is required in replace mode", id))
		}
		for _, m := range p.Models {
			if m.ID == "" {
				errs = append(errs, fmt.Errorf("provider %q: model id is required", id))
			}
		}
	}
	return errs
}

func (o *ModelOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Mode, "models.mode", o.Mode, "Model provider merge mode: 'merge' or 'replace'.")
	fs.StringVar(&o.DefaultProvider, "models.default-provider", o.DefaultProvider, "Provider used for the chat model.")
	fs.StringVar(&o.DefaultModel, "models.default-model", o.DefaultModel,
		"Model ID used for the chat model. Also read from $"+ModelEnvVar+".")
	fs.IntVar(&o.MaxTokens, "models.max-tokens", o.MaxTokens, "Max completion tokens, 0 keeps the provider default.")
}

// ResolveProvider combines a provider's built-in defaults with the user
// configuration for it. In merge mode non-empty user fields win; in replace
// mode a user entry is taken as is.
func (o *ModelOptions) ResolveProvider(name string, defaults *ProviderConfig) (*ProviderConfig, error) {
	user := o.Providers[name]
	if user == nil {
		if defaults == nil {
			return &ProviderConfig{}, nil
		}
		return defaults, nil
	}
	if o.Mode == ModeReplace || defaults == nil {
		return user, nil
	}

	merged := &ProviderConfig{}
	if err := copier.CopyWithOption(merged, defaults, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy %s defaults: %w", name, err)
	}
	if err := copier.CopyWithOption(merged, user, copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("merge %s config: %w", name, err)
	}
	return merged, nil
}
