package agentflow

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg/errno"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsModelWithoutTools(t *testing.T) {
	_, err := NewAgentFlowBuilder().Build(context.Background(), BuildConfig{
		ChatModel:     plainChatModel{},
		MaxToolRounds: 3,
	})
	require.ErrorIs(t, err, errno.ErrModelNotToolCapable)
}

func TestBuildRejectsNonPositiveRounds(t *testing.T) {
	_, err := NewAgentFlowBuilder().Build(context.Background(), BuildConfig{
		ChatModel: newFakeChatModel(),
	})
	require.Error(t, err)
}

func TestBuildDeclaresTimeTool(t *testing.T) {
	cm := newFakeChatModel(schema.AssistantMessage("Hello there.", nil))
	runnable, err := NewAgentFlowBuilder().Build(context.Background(), BuildConfig{
		ChatModel:     cm,
		SystemPrompt:  testPrompt,
		MaxToolRounds: 2,
		Clock:         fixedClock,
	})
	require.NoError(t, err)
	require.Len(t, cm.tools, 1)
	require.Equal(t, TimeToolName, cm.tools[0].Name)

	conv, err := runnable.Invoke(context.Background(), entity.TextInput("Hello"))
	require.NoError(t, err)
	require.Len(t, cm.requests, 1)
	require.Equal(t, RouteEnd, NextRoute(conv.Messages))
	require.Equal(t, entity.AssistantMessage{Content: "Hello there."}, conv.Last())
}

func TestBuildLoopsThroughTool(t *testing.T) {
	cm := newFakeChatModel(
		toolCallReply("c1"),
		schema.AssistantMessage("It is 00:00 UTC.", nil),
	)
	runnable, err := NewAgentFlowBuilder().Build(context.Background(), BuildConfig{
		ChatModel:     cm,
		SystemPrompt:  testPrompt,
		MaxToolRounds: 2,
		Clock:         fixedClock,
	})
	require.NoError(t, err)

	conv, err := runnable.Invoke(context.Background(), entity.TextInput("What time is it?"))
	require.NoError(t, err)
	require.False(t, conv.Exhausted)
	require.Equal(t, 1, conv.ToolRounds)
	require.Len(t, cm.requests, 2)

	second := cm.requests[1]
	require.Equal(t, schema.Tool, second[len(second)-1].Role)
	require.Equal(t, "c1", second[len(second)-1].ToolCallID)
}

func TestMaxRunStepsCoversRounds(t *testing.T) {
	for rounds := 1; rounds <= 5; rounds++ {
		// input + assistant + 2 per round + final assistant branch
		require.Greater(t, maxRunSteps(rounds), 2+2*rounds)
	}
}
