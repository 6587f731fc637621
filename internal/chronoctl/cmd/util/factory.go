package util

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cloudwego/eino/components/model"
	chronosoptions "github.com/kiosk404/chronos/internal/chronoctl/options"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/service/runtime"
	"github.com/kiosk404/chronos/internal/engine/service/llm"
)

// Factory gives commands access to the configured services. Options are
// filled by the root command before any subcommand runs, so nothing is built
// until a command asks for it.
type Factory interface {
	Options() *chronosoptions.Options
	LLM() (*llm.Module, error)
	ChatModel(ctx context.Context) (model.BaseChatModel, error)
	TurnRunner(ctx context.Context, toolTrace io.Writer) (*runtime.TurnRunner, error)
}

type defaultFactory struct {
	opts *chronosoptions.Options

	once   sync.Once
	module *llm.Module
	err    error
}

func NewFactory(opts *chronosoptions.Options) Factory {
	return &defaultFactory{opts: opts}
}

func (f *defaultFactory) Options() *chronosoptions.Options {
	return f.opts
}

func (f *defaultFactory) LLM() (*llm.Module, error) {
	f.once.Do(func() {
		cfg := &llm.Config{ModelOptions: f.opts.Models}
		f.module, f.err = cfg.Complete().New()
	})
	return f.module, f.err
}

func (f *defaultFactory) ChatModel(ctx context.Context) (model.BaseChatModel, error) {
	m, err := f.LLM()
	if err != nil {
		return nil, err
	}
	return m.DefaultChatModel(ctx)
}

func (f *defaultFactory) TurnRunner(ctx context.Context, toolTrace io.Writer) (*runtime.TurnRunner, error) {
	cm, err := f.ChatModel(ctx)
	if err != nil {
		return nil, err
	}
	runner, err := runtime.NewTurnRunner(ctx, cm, runtime.RunnerConfig{
		SystemPrompt:  f.opts.Agent.SystemPrompt,
		MaxToolRounds: f.opts.Agent.MaxToolRounds,
		ToolTrace:     toolTrace,
	})
	if err != nil {
		return nil, fmt.Errorf("create turn runner: %w", err)
	}
	return runner, nil
}
