package agentflow

import (
	"context"
	"fmt"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg/errno"
	"github.com/kiosk404/chronos/pkg/logger"
)

// AssistantConfig is the fixed configuration of the assistant step.
// ChatModel must already be bound to the tool declaration.
type AssistantConfig struct {
	ChatModel    einoModel.ToolCallingChatModel
	SystemPrompt string
}

// AssistantStep asks the model for the next reply and records it.
type AssistantStep struct {
	cfg AssistantConfig
}

func NewAssistantStep(cfg AssistantConfig) *AssistantStep {
	return &AssistantStep{cfg: cfg}
}

// Run ensures the system prompt heads the history, sends the whole history to
// the model with tool choice left to the model, and appends exactly one
// assistant message. Model errors are returned unchanged apart from wrapping.
func (a *AssistantStep) Run(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, error) {
	ensureSystemPrompt(conv, a.cfg.SystemPrompt)

	resp, err := a.cfg.ChatModel.Generate(ctx, ToSchemaMessages(conv.Messages),
		einoModel.WithToolChoice(schema.ToolChoiceAllowed),
	)
	if err != nil {
		return nil, fmt.Errorf("assistant step: %w", err)
	}
	if resp == nil {
		return nil, errno.ErrEmptyModelResponse
	}

	reply := toAssistantMessage(resp)
	conv.Append(reply)

	logger.DebugX(pkg.ModuleName, "[AgentFlow/Assistant] reply with %d chars, %d tool calls",
		len(reply.Content), len(reply.ToolCalls))
	return conv, nil
}

// ensureSystemPrompt inserts the system message at the head of the history
// unless one is already there. An empty prompt disables the insertion.
func ensureSystemPrompt(conv *entity.Conversation, prompt string) {
	if prompt == "" {
		return
	}
	if len(conv.Messages) > 0 && conv.Messages[0].Role() == entity.RoleSystem {
		return
	}
	conv.Messages = append([]entity.Message{entity.NewSystemMessage(prompt)}, conv.Messages...)
}
