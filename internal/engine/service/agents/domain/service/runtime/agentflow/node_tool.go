package agentflow

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg"
	"github.com/kiosk404/chronos/pkg/logger"
)

// ToolExecutor answers the tool calls of the last assistant message.
type ToolExecutor struct {
	tool tool.InvokableTool
	name string
}

// NewToolExecutor binds the executor to a single tool; only calls carrying
// that tool's name are executed.
func NewToolExecutor(ctx context.Context, t tool.InvokableTool) (*ToolExecutor, error) {
	info, err := t.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool info: %w", err)
	}
	return &ToolExecutor{tool: t, name: info.Name}, nil
}

// Run appends one tool message per recognised call, in request order, each
// linked to its call by ID. Calls for other tool names are skipped.
func (e *ToolExecutor) Run(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, error) {
	last, ok := conv.Last().(entity.AssistantMessage)
	if !ok || !last.HasToolCalls() {
		return conv, nil
	}
	conv.ToolRounds++

	for _, call := range last.ToolCalls {
		if call.Name != e.name {
			logger.DebugX(pkg.ModuleName, "[AgentFlow/Tool] skipping unknown tool %q (call %s)", call.Name, call.ID)
			continue
		}

		out, err := e.tool.InvokableRun(ctx, call.Arguments)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", call.Name, err)
		}
		conv.Append(entity.NewToolMessage(call, out))
	}
	return conv, nil
}
