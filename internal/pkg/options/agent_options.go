package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	DefaultSystemPrompt  = "Ты ассистент на русском языке. Используй функцию get_current_time когда пользователь спрашивает про время."
	DefaultMaxToolRounds = 10
)

// AgentOptions configures the turn loop.
type AgentOptions struct {
	SystemPrompt  string `json:"system-prompt" mapstructure:"system-prompt"`
	MaxToolRounds int    `json:"max-tool-rounds" mapstructure:"max-tool-rounds"`
}

func NewAgentOptions() *AgentOptions {
	return &AgentOptions{
		SystemPrompt:  DefaultSystemPrompt,
		MaxToolRounds: DefaultMaxToolRounds,
	}
}

func (o *AgentOptions) Validate() []error {
	var errs []error
	if o.MaxToolRounds < 1 {
		errs = append(errs, fmt.Errorf("agent.max-tool-rounds must be at least 1, got %d", o.MaxToolRounds))
	}
	return errs
}

func (o *AgentOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.SystemPrompt, "agent.system-prompt", o.SystemPrompt,
		"System message placed at the head of every conversation. Empty disables it.")
	fs.IntVar(&o.MaxToolRounds, "agent.max-tool-rounds", o.MaxToolRounds,
		"Tool rounds allowed in one turn before it is stopped.")
}
