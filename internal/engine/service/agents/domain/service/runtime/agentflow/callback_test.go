package agentflow

import (
	"bytes"
	"context"
	"testing"

	"github.com/cloudwego/eino/callbacks"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/stretchr/testify/require"
)

func TestTrailingToolMessages(t *testing.T) {
	c1 := entity.ToolCall{ID: "c1", Name: TimeToolName}
	c2 := entity.ToolCall{ID: "c2", Name: TimeToolName}
	msgs := []entity.Message{
		entity.NewUserMessage("hi"),
		entity.AssistantMessage{ToolCalls: []entity.ToolCall{c1, c2}},
		entity.NewToolMessage(c1, "a"),
		entity.NewToolMessage(c2, "b"),
	}

	got := TrailingToolMessages(msgs)
	require.Len(t, got, 2)
	require.Equal(t, "c1", got[0].ToolCallID)
	require.Equal(t, "c2", got[1].ToolCallID)
	require.Empty(t, TrailingToolMessages(msgs[:2]))
	require.Empty(t, TrailingToolMessages(nil))
}

func TestTraceCallbackEchoesToolResults(t *testing.T) {
	var buf bytes.Buffer
	cb := NewTraceCallback(&buf)

	call := entity.ToolCall{ID: "c1", Name: TimeToolName}
	conv := entity.NewConversation([]entity.Message{
		entity.AssistantMessage{ToolCalls: []entity.ToolCall{call}},
		entity.NewToolMessage(call, `{"utc":"2024-01-01T00:00:00Z"}`),
	})

	cb.OnEnd(context.Background(), &callbacks.RunInfo{Name: NodeKeyAssistant}, conv)
	require.Empty(t, buf.String())

	cb.OnEnd(context.Background(), &callbacks.RunInfo{Name: NodeKeyTool}, conv)
	require.Equal(t, "[tool] get_current_time (c1) -> {\"utc\":\"2024-01-01T00:00:00Z\"}\n", buf.String())
}
