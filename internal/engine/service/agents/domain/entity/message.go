package entity

// Role represents the role of a message sender.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single entry of the conversation history.
//
// It is a closed set: SystemMessage, UserMessage, AssistantMessage and
// ToolMessage are the only implementations, and each carries only the
// fields meaningful for its role. Conversion to/from Eino's schema.Message
// is handled by the message converter in the runtime layer.
type Message interface {
	Role() Role
	isMessage()
}

// SystemMessage carries the fixed instructions placed at the head of the history.
type SystemMessage struct {
	Content string
}

// UserMessage is a line typed by the user.
type UserMessage struct {
	Content string
}

// AssistantMessage is one model reply. Content may be empty when the model
// only requested tool calls.
type AssistantMessage struct {
	Content   string
	ToolCalls []ToolCall
}

// ToolMessage carries a tool's output back to the model. ToolCallID links it
// to the ToolCall of the preceding assistant message that requested it.
type ToolMessage struct {
	ToolCallID string
	Name       string
	Content    string
}

func (SystemMessage) Role() Role    { return RoleSystem }
func (UserMessage) Role() Role      { return RoleUser }
func (AssistantMessage) Role() Role { return RoleAssistant }
func (ToolMessage) Role() Role      { return RoleTool }

func (SystemMessage) isMessage()    {}
func (UserMessage) isMessage()      {}
func (AssistantMessage) isMessage() {}
func (ToolMessage) isMessage()      {}

// HasToolCalls reports whether the assistant asked for at least one tool call.
func (m AssistantMessage) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) SystemMessage {
	return SystemMessage{Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) UserMessage {
	return UserMessage{Content: content}
}

// NewToolMessage creates a tool result message answering the given call.
func NewToolMessage(call ToolCall, content string) ToolMessage {
	return ToolMessage{
		ToolCallID: call.ID,
		Name:       call.Name,
		Content:    content,
	}
}
