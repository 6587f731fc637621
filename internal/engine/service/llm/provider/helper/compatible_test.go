package helper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/internal/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionResponse = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4.1-mini",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "It is noon."}, "finish_reason": "stop"}],
  "usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
}`

func TestCompatiblePlugin_DefaultConfigIsACopy(t *testing.T) {
	p := NewCompatiblePlugin("acme", options.ProviderConfig{
		BaseURL: "https://acme.example/v1",
		Models:  []options.ModelDefinition{{ID: "acme-1"}},
	})

	cfg := p.DefaultConfig()
	assert.Equal(t, "acme", p.Name())
	assert.Equal(t, "openai-completions", cfg.API)

	cfg.Models[0].ID = "changed"
	assert.Equal(t, "acme-1", p.DefaultConfig().Models[0].ID)
}

func TestCompatiblePlugin_ChatCompletionsEndpoint(t *testing.T) {
	t.Setenv("CHRONOS_TEST_ORG", "org-1")

	var path, org, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		org = r.Header.Get("X-Org")
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionResponse)
	}))
	defer srv.Close()

	p := NewCompatiblePlugin("acme", options.ProviderConfig{})
	cm, err := p.BuildChatModel(context.Background(), &entity.ConnInfo{
		BaseURL: srv.URL + "/v1",
		APIKey:  "sk-test",
		Model:   "gpt-4.1-mini",
		Headers: map[string]string{"X-Org": "${CHRONOS_TEST_ORG}"},
	}, nil)
	require.NoError(t, err)

	reply, err := cm.Generate(context.Background(), []*schema.Message{schema.UserMessage("What time is it?")})
	require.NoError(t, err)
	assert.Equal(t, "It is noon.", reply.Content)

	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "org-1", org)
	assert.Equal(t, "Bearer sk-test", auth)
}
