package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/service/runtime/agentflow"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg/errno"
	"github.com/kiosk404/chronos/pkg/logger"
)

// RunnerConfig configures a TurnRunner.
type RunnerConfig struct {
	SystemPrompt  string
	MaxToolRounds int

	// Clock feeds the time tool; nil means the system clock.
	Clock func() time.Time

	// ToolTrace receives a line per tool result when non-nil.
	ToolTrace io.Writer
}

// TurnRunner executes one user turn at a time through the compiled agent flow.
//
// The flow is compiled once in NewTurnRunner; Run may be called repeatedly
// but never concurrently.
type TurnRunner struct {
	runnable compose.Runnable[entity.Input, *entity.Conversation]
	trace    *agentflow.TraceCallback
}

// NewTurnRunner builds the agent flow around cm.
func NewTurnRunner(ctx context.Context, cm einoModel.BaseChatModel, cfg RunnerConfig) (*TurnRunner, error) {
	runnable, err := agentflow.NewAgentFlowBuilder().Build(ctx, agentflow.BuildConfig{
		ChatModel:     cm,
		SystemPrompt:  cfg.SystemPrompt,
		MaxToolRounds: cfg.MaxToolRounds,
		Clock:         cfg.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build agent flow: %w", err)
	}
	return &TurnRunner{
		runnable: runnable,
		trace:    agentflow.NewTraceCallback(cfg.ToolTrace),
	}, nil
}

// Run executes a turn and returns the full history after it.
//
// When the tool round limit stops the turn, the partial history is returned
// together with errno.ErrMaxTurnsExceeded.
func (r *TurnRunner) Run(ctx context.Context, in entity.Input) ([]entity.Message, error) {
	if in == nil {
		in = entity.HistoryInput(nil)
	}

	start := time.Now()
	conv, err := r.runnable.Invoke(ctx, in, compose.WithCallbacks(r.trace.Build()))
	if err != nil {
		if errors.Is(err, compose.ErrExceedMaxSteps) {
			return nil, fmt.Errorf("%w: %v", errno.ErrMaxTurnsExceeded, err)
		}
		return nil, fmt.Errorf("agent flow invoke failed: %w", err)
	}

	logger.InfoX(pkg.ModuleName, "[TurnRunner] turn finished in %s, %d messages, %d tool rounds",
		time.Since(start).Round(time.Millisecond), len(conv.Messages), conv.ToolRounds)

	if conv.Exhausted {
		return conv.Messages, errno.ErrMaxTurnsExceeded
	}
	return conv.Messages, nil
}

// LastReply returns the text of the most recent assistant message that has
// any, scanning from the end of the history.
func LastReply(msgs []entity.Message) (string, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if m, ok := msgs[i].(entity.AssistantMessage); ok && m.Content != "" {
			return m.Content, true
		}
	}
	return "", false
}
