package entity

// Conversation is the state threaded through one turn of the agent flow.
// Every node appends to Messages in place; nothing reads it concurrently.
type Conversation struct {
	Messages []Message

	// ToolRounds counts how many times the tool executor has run this turn.
	ToolRounds int

	// Exhausted is set when the turn stopped because the tool round limit
	// was hit while the model still asked for tools.
	Exhausted bool
}

// NewConversation wraps msgs; a nil slice becomes an empty one.
func NewConversation(msgs []Message) *Conversation {
	if msgs == nil {
		msgs = []Message{}
	}
	return &Conversation{Messages: msgs}
}

// Append adds messages to the end of the history.
func (c *Conversation) Append(msgs ...Message) {
	c.Messages = append(c.Messages, msgs...)
}

// Last returns the most recent message, or nil for an empty history.
func (c *Conversation) Last() Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}
