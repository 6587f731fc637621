package agentflow

import (
	"testing"

	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestNextRoute(t *testing.T) {
	call := entity.ToolCall{ID: "c1", Name: TimeToolName}

	tests := []struct {
		name string
		msgs []entity.Message
		want Route
	}{
		{"empty history", nil, RouteEnd},
		{"user last", []entity.Message{entity.NewUserMessage("hi")}, RouteEnd},
		{"assistant text only", []entity.Message{entity.AssistantMessage{Content: "hello"}}, RouteEnd},
		{"assistant empty calls", []entity.Message{entity.AssistantMessage{ToolCalls: []entity.ToolCall{}}}, RouteEnd},
		{"assistant with call", []entity.Message{entity.AssistantMessage{ToolCalls: []entity.ToolCall{call}}}, RouteToTool},
		{"assistant with text and call", []entity.Message{entity.AssistantMessage{Content: "checking", ToolCalls: []entity.ToolCall{call}}}, RouteToTool},
		{"tool last", []entity.Message{
			entity.AssistantMessage{ToolCalls: []entity.ToolCall{call}},
			entity.NewToolMessage(call, `{"utc":"2024-01-01T00:00:00Z"}`),
		}, RouteEnd},
		{"system last", []entity.Message{entity.NewSystemMessage("sys")}, RouteEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRoute(tt.msgs))
		})
	}
}
