package agentflow

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg/errno"
	"github.com/stretchr/testify/require"
)

const testPrompt = "You tell the time."

func TestAssistantStepPrependsSystemPrompt(t *testing.T) {
	cm := newFakeChatModel(schema.AssistantMessage("Hi!", nil))
	step := NewAssistantStep(AssistantConfig{ChatModel: cm, SystemPrompt: testPrompt})

	conv := entity.NewConversation([]entity.Message{entity.NewUserMessage("Hello")})
	_, err := step.Run(context.Background(), conv)
	require.NoError(t, err)

	require.Len(t, cm.requests, 1)
	req := cm.requests[0]
	require.Len(t, req, 2)
	require.Equal(t, schema.System, req[0].Role)
	require.Equal(t, testPrompt, req[0].Content)
	require.Equal(t, schema.User, req[1].Role)

	require.Equal(t, []entity.Message{
		entity.SystemMessage{Content: testPrompt},
		entity.UserMessage{Content: "Hello"},
		entity.AssistantMessage{Content: "Hi!"},
	}, conv.Messages)
}

func TestAssistantStepKeepsExistingSystemPrompt(t *testing.T) {
	cm := newFakeChatModel(schema.AssistantMessage("ok", nil))
	step := NewAssistantStep(AssistantConfig{ChatModel: cm, SystemPrompt: testPrompt})

	conv := entity.NewConversation([]entity.Message{
		entity.NewSystemMessage("custom"),
		entity.NewUserMessage("Hello"),
	})
	_, err := step.Run(context.Background(), conv)
	require.NoError(t, err)

	require.Len(t, conv.Messages, 3)
	require.Equal(t, entity.SystemMessage{Content: "custom"}, conv.Messages[0])
}

func TestAssistantStepRecordsToolCalls(t *testing.T) {
	cm := newFakeChatModel(toolCallReply("c1"))
	step := NewAssistantStep(AssistantConfig{ChatModel: cm, SystemPrompt: testPrompt})

	conv := entity.NewConversation([]entity.Message{entity.NewUserMessage("What time is it?")})
	_, err := step.Run(context.Background(), conv)
	require.NoError(t, err)

	reply, ok := conv.Last().(entity.AssistantMessage)
	require.True(t, ok)
	require.Empty(t, reply.Content)
	require.Equal(t, []entity.ToolCall{{ID: "c1", Type: "function", Name: TimeToolName, Arguments: "{}"}}, reply.ToolCalls)
}

func TestAssistantStepPropagatesModelError(t *testing.T) {
	boom := errors.New("401 unauthorized")
	cm := newFakeChatModel()
	cm.err = boom
	step := NewAssistantStep(AssistantConfig{ChatModel: cm, SystemPrompt: testPrompt})

	_, err := step.Run(context.Background(), entity.NewConversation(nil))
	require.ErrorIs(t, err, boom)
}

func TestAssistantStepRejectsEmptyResponse(t *testing.T) {
	cm := &fakeChatModel{replies: []*schema.Message{nil}}
	step := NewAssistantStep(AssistantConfig{ChatModel: cm, SystemPrompt: testPrompt})

	_, err := step.Run(context.Background(), entity.NewConversation(nil))
	require.ErrorIs(t, err, errno.ErrEmptyModelResponse)
}

func TestAssistantStepLeavesToolChoiceToModel(t *testing.T) {
	cm := newFakeChatModel(schema.AssistantMessage("hello", nil))
	step := NewAssistantStep(AssistantConfig{ChatModel: cm, SystemPrompt: testPrompt})

	_, err := step.Run(context.Background(), entity.NewConversation([]entity.Message{entity.NewUserMessage("Hello")}))
	require.NoError(t, err)

	require.Len(t, cm.toolChoices, 1)
	require.NotNil(t, cm.toolChoices[0])
	require.Equal(t, schema.ToolChoiceAllowed, *cm.toolChoices[0])
}
