package entity

import (
	"fmt"

	"github.com/kiosk404/chronos/pkg/utils/json"
)

// record is the chat-completions wire shape of a message.
type record struct {
	Role       Role             `json:"role"`
	Content    *string          `json:"content"`
	ToolCalls  []toolCallRecord `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type toolCallRecord struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function functionRecord `json:"function"`
}

type functionRecord struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// MarshalTranscript renders the history as an indented JSON array in the
// OpenAI chat format. Assistant messages without text get a null content.
func MarshalTranscript(msgs []Message) ([]byte, error) {
	records := make([]record, 0, len(msgs))
	for i, msg := range msgs {
		rec, err := toRecord(msg)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return json.MarshalIndent(records, "", "  ")
}

func toRecord(msg Message) (record, error) {
	switch m := msg.(type) {
	case SystemMessage:
		return record{Role: RoleSystem, Content: strPtr(m.Content)}, nil
	case UserMessage:
		return record{Role: RoleUser, Content: strPtr(m.Content)}, nil
	case AssistantMessage:
		rec := record{Role: RoleAssistant}
		if m.Content != "" {
			rec.Content = strPtr(m.Content)
		}
		for _, tc := range m.ToolCalls {
			typ := tc.Type
			if typ == "" {
				typ = ToolCallTypeFunction
			}
			rec.ToolCalls = append(rec.ToolCalls, toolCallRecord{
				ID:       tc.ID,
				Type:     typ,
				Function: functionRecord{Name: tc.Name, Arguments: tc.Arguments},
			})
		}
		return rec, nil
	case ToolMessage:
		return record{Role: RoleTool, Content: strPtr(m.Content), ToolCallID: m.ToolCallID}, nil
	default:
		return record{}, fmt.Errorf("unsupported message type %T", msg)
	}
}

func strPtr(s string) *string {
	return &s
}
