package agentflow

import (
	"context"
	"testing"
	"time"

	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 123456789, time.UTC)
}

func newTestExecutor(t *testing.T) *ToolExecutor {
	t.Helper()
	exec, err := NewToolExecutor(context.Background(), NewTimeTool(fixedClock))
	require.NoError(t, err)
	return exec
}

func TestToolExecutorAnswersEachCall(t *testing.T) {
	conv := entity.NewConversation([]entity.Message{
		entity.NewUserMessage("time?"),
		entity.AssistantMessage{ToolCalls: []entity.ToolCall{
			{ID: "c1", Name: TimeToolName, Arguments: "{}"},
			{ID: "c2", Name: "get_weather", Arguments: "{}"},
			{ID: "c3", Name: TimeToolName, Arguments: ""},
		}},
	})

	out, err := newTestExecutor(t).Run(context.Background(), conv)
	require.NoError(t, err)
	require.Same(t, conv, out)
	require.Equal(t, 1, conv.ToolRounds)

	require.Len(t, conv.Messages, 4)
	require.Equal(t, entity.ToolMessage{
		ToolCallID: "c1",
		Name:       TimeToolName,
		Content:    `{"utc":"2024-01-01T00:00:00Z"}`,
	}, conv.Messages[2])
	require.Equal(t, "c3", conv.Messages[3].(entity.ToolMessage).ToolCallID)
}

func TestToolExecutorLinksToPrecedingCalls(t *testing.T) {
	assistant := entity.AssistantMessage{ToolCalls: []entity.ToolCall{
		{ID: "a", Name: TimeToolName},
		{ID: "b", Name: TimeToolName},
	}}
	conv := entity.NewConversation([]entity.Message{assistant})

	_, err := newTestExecutor(t).Run(context.Background(), conv)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, tc := range assistant.ToolCalls {
		ids[tc.ID] = true
	}
	for _, msg := range TrailingToolMessages(conv.Messages) {
		require.True(t, ids[msg.ToolCallID], "unlinked tool result %q", msg.ToolCallID)
	}
}

func TestToolExecutorNoopWithoutCalls(t *testing.T) {
	for _, last := range []entity.Message{
		entity.NewUserMessage("hi"),
		entity.AssistantMessage{Content: "hello"},
	} {
		conv := entity.NewConversation([]entity.Message{last})
		_, err := newTestExecutor(t).Run(context.Background(), conv)
		require.NoError(t, err)
		require.Len(t, conv.Messages, 1)
		require.Zero(t, conv.ToolRounds)
	}
}
