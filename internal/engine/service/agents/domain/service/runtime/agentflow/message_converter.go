package agentflow

import (
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
)

// ToSchemaMessages converts domain messages to Eino schema messages.
func ToSchemaMessages(msgs []entity.Message) []*schema.Message {
	result := make([]*schema.Message, 0, len(msgs))
	for _, msg := range msgs {
		if sm := ToSchemaMessage(msg); sm != nil {
			result = append(result, sm)
		}
	}
	return result
}

// ToSchemaMessage converts one domain message. It returns nil for a nil message.
func ToSchemaMessage(msg entity.Message) *schema.Message {
	switch m := msg.(type) {
	case entity.SystemMessage:
		return schema.SystemMessage(m.Content)
	case entity.UserMessage:
		return schema.UserMessage(m.Content)
	case entity.AssistantMessage:
		sm := &schema.Message{
			Role:    schema.Assistant,
			Content: m.Content,
		}
		if len(m.ToolCalls) > 0 {
			sm.ToolCalls = make([]schema.ToolCall, 0, len(m.ToolCalls))
			for _, tc := range m.ToolCalls {
				sm.ToolCalls = append(sm.ToolCalls, schema.ToolCall{
					ID:   tc.ID,
					Type: entity.ToolCallTypeFunction,
					Function: schema.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				})
			}
		}
		return sm
	case entity.ToolMessage:
		return &schema.Message{
			Role:       schema.Tool,
			Content:    m.Content,
			Name:       m.Name,
			ToolCallID: m.ToolCallID,
		}
	default:
		return nil
	}
}

// FromSchemaMessage converts an Eino message back to its domain variant.
// Unknown roles are treated as user messages.
func FromSchemaMessage(sm *schema.Message) entity.Message {
	if sm == nil {
		return nil
	}
	switch sm.Role {
	case schema.System:
		return entity.SystemMessage{Content: sm.Content}
	case schema.Assistant:
		return toAssistantMessage(sm)
	case schema.Tool:
		return entity.ToolMessage{
			ToolCallID: sm.ToolCallID,
			Name:       sm.Name,
			Content:    sm.Content,
		}
	default:
		return entity.UserMessage{Content: sm.Content}
	}
}

// toAssistantMessage keeps the reply text and requested calls. Providers that
// omit call IDs get a generated one so tool results can still be linked.
func toAssistantMessage(sm *schema.Message) entity.AssistantMessage {
	msg := entity.AssistantMessage{Content: sm.Content}
	if len(sm.ToolCalls) == 0 {
		return msg
	}

	msg.ToolCalls = make([]entity.ToolCall, 0, len(sm.ToolCalls))
	for _, tc := range sm.ToolCalls {
		id := tc.ID
		if id == "" {
			id = "call_" + uuid.NewString()
		}
		msg.ToolCalls = append(msg.ToolCalls, entity.ToolCall{
			ID:        id,
			Type:      entity.ToolCallTypeFunction,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return msg
}
