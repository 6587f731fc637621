package entity

// ToolCallTypeFunction is the only tool call type the chat completion APIs emit.
const ToolCallTypeFunction = "function"

// ToolCall represents an LLM's request to execute a tool.
type ToolCall struct {
	// ID is the unique identifier for the tool call.
	ID string `json:"id"`
	// Type is always "function".
	Type string `json:"type"`
	// Name is the tool name to invoke
	Name string `json:"name"`
	// Arguments is the JSON string of the tool arguments.
	Arguments string `json:"arguments"`
}

// TimeResult is the payload returned by the get_current_time tool.
type TimeResult struct {
	UTC string `json:"utc"`
}
