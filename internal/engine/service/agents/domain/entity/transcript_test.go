package entity

import (
	"testing"

	"github.com/kiosk404/chronos/pkg/utils/json"
	"github.com/stretchr/testify/require"
)

func TestMarshalTranscript(t *testing.T) {
	call := ToolCall{ID: "c1", Name: "get_current_time"}
	msgs := []Message{
		NewSystemMessage("sys"),
		NewUserMessage("What time is it?"),
		AssistantMessage{ToolCalls: []ToolCall{call}},
		NewToolMessage(call, `{"utc":"2024-01-01T00:00:00Z"}`),
		AssistantMessage{Content: "It is 00:00 UTC."},
	}

	data, err := MarshalTranscript(msgs)
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 5)

	require.Equal(t, "system", got[0]["role"])
	require.Equal(t, "What time is it?", got[1]["content"])

	require.Contains(t, got[2], "content")
	require.Nil(t, got[2]["content"])
	calls := got[2]["tool_calls"].([]interface{})
	require.Len(t, calls, 1)
	first := calls[0].(map[string]interface{})
	require.Equal(t, "c1", first["id"])
	require.Equal(t, "function", first["type"])
	require.Equal(t, "get_current_time", first["function"].(map[string]interface{})["name"])

	require.Equal(t, "tool", got[3]["role"])
	require.Equal(t, "c1", got[3]["tool_call_id"])
	require.NotContains(t, got[4], "tool_calls")
}

func TestMessageRoles(t *testing.T) {
	require.Equal(t, RoleSystem, NewSystemMessage("").Role())
	require.Equal(t, RoleUser, NewUserMessage("").Role())
	require.Equal(t, RoleAssistant, AssistantMessage{}.Role())
	require.Equal(t, RoleTool, ToolMessage{}.Role())
	require.False(t, AssistantMessage{}.HasToolCalls())
}

func TestConversation(t *testing.T) {
	conv := NewConversation(nil)
	require.NotNil(t, conv.Messages)
	require.Nil(t, conv.Last())

	conv.Append(NewUserMessage("a"), NewUserMessage("b"))
	require.Equal(t, NewUserMessage("b"), conv.Last())
}
