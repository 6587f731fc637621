package agentflow

import (
	"context"

	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
)

// Normalize turns either accepted input shape into a message sequence.
// A raw string becomes a single user message; a history is used as is.
// A nil input or an empty history yields an empty sequence.
func Normalize(in entity.Input) []entity.Message {
	switch v := in.(type) {
	case entity.TextInput:
		return []entity.Message{entity.NewUserMessage(string(v))}
	case entity.HistoryInput:
		if v == nil {
			return []entity.Message{}
		}
		return []entity.Message(v)
	default:
		return []entity.Message{}
	}
}

func inputNode(_ context.Context, in entity.Input) (*entity.Conversation, error) {
	return entity.NewConversation(Normalize(in)), nil
}
