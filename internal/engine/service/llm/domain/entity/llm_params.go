package entity

// LLMParams are runtime generation parameters; zero values keep provider defaults.
type LLMParams struct {
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	TopP        *float32 `json:"top_p,omitempty"`
}
