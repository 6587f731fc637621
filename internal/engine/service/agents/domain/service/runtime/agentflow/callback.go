package agentflow

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudwego/eino/callbacks"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg"
	"github.com/kiosk404/chronos/pkg/logger"
)

// TraceCallback is the Eino callbacks.Handler that logs node transitions of
// the agent flow. When out is set, results produced by the tool node are
// echoed there as well.
type TraceCallback struct {
	out io.Writer
}

// NewTraceCallback creates a TraceCallback; out may be nil.
func NewTraceCallback(out io.Writer) *TraceCallback {
	return &TraceCallback{out: out}
}

// Build returns the Eino callbacks.Handler.
func (t *TraceCallback) Build() callbacks.Handler {
	return callbacks.NewHandlerBuilder().
		OnStartFn(t.OnStart).
		OnEndFn(t.OnEnd).
		OnErrorFn(t.OnError).
		Build()
}

func (t *TraceCallback) OnStart(ctx context.Context, info *callbacks.RunInfo, _ callbacks.CallbackInput) context.Context {
	if info != nil {
		logger.DebugX(pkg.ModuleName, "[AgentFlow/Callback] %s/%s started", info.Component, info.Name)
	}
	return ctx
}

// OnEnd echoes the trailing tool messages once the tool node finishes.
func (t *TraceCallback) OnEnd(ctx context.Context, info *callbacks.RunInfo, output callbacks.CallbackOutput) context.Context {
	if info == nil {
		return ctx
	}
	logger.DebugX(pkg.ModuleName, "[AgentFlow/Callback] %s/%s finished", info.Component, info.Name)

	if t.out == nil || info.Name != NodeKeyTool {
		return ctx
	}
	conv, ok := output.(*entity.Conversation)
	if !ok || conv == nil {
		return ctx
	}
	for _, msg := range TrailingToolMessages(conv.Messages) {
		_, _ = fmt.Fprintf(t.out, "[tool] %s (%s) -> %s\n", msg.Name, msg.ToolCallID, msg.Content)
	}
	return ctx
}

func (t *TraceCallback) OnError(ctx context.Context, info *callbacks.RunInfo, err error) context.Context {
	if info != nil {
		logger.WarnX(pkg.ModuleName, "[AgentFlow/Callback] error in %s/%s: %v", info.Component, info.Name, err)
	}
	return ctx
}

// TrailingToolMessages returns the tool messages at the end of msgs, oldest first.
func TrailingToolMessages(msgs []entity.Message) []entity.ToolMessage {
	start := len(msgs)
	for start > 0 {
		if _, ok := msgs[start-1].(entity.ToolMessage); !ok {
			break
		}
		start--
	}
	out := make([]entity.ToolMessage, 0, len(msgs)-start)
	for _, msg := range msgs[start:] {
		out = append(out, msg.(entity.ToolMessage))
	}
	return out
}
