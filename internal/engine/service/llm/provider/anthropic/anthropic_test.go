package anthropic

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/llm/domain/entity"
	"github.com/kiosk404/chronos/pkg/utils/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageResponse = `{
  "id": "msg_01",
  "type": "message",
  "role": "assistant",
  "model": "claude-sonnet-4-5",
  "content": [{"type": "text", "text": "It is noon."}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 10, "output_tokens": 4}
}`

type capturedRequest struct {
	path string
	body map[string]interface{}
}

func newMessagesServer(t *testing.T) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &got.body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, messageResponse)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestDefaultConfigBaseURLHasNoVersion(t *testing.T) {
	assert.Equal(t, "https://api.anthropic.com", New().DefaultConfig().BaseURL)
}

func TestBuildChatModel_MessagesEndpoint(t *testing.T) {
	srv, got := newMessagesServer(t)

	cm, err := New().BuildChatModel(context.Background(), &entity.ConnInfo{
		ProviderID: Name,
		BaseURL:    srv.URL,
		APIKey:     "sk-ant-test",
		Model:      "claude-sonnet-4-5",
	}, nil)
	require.NoError(t, err)

	_, _ = cm.Generate(context.Background(), []*schema.Message{schema.UserMessage("What time is it?")})

	assert.Equal(t, "/v1/messages", got.path)
	assert.EqualValues(t, defaultMaxTokens, got.body["max_tokens"])
	assert.Equal(t, "claude-sonnet-4-5", got.body["model"])
}

func TestBuildChatModel_MaxTokensFromParams(t *testing.T) {
	srv, got := newMessagesServer(t)

	cm, err := New().BuildChatModel(context.Background(), &entity.ConnInfo{
		BaseURL: srv.URL,
		APIKey:  "sk-ant-test",
		Model:   "claude-sonnet-4-5",
	}, &entity.LLMParams{MaxTokens: 256})
	require.NoError(t, err)

	_, _ = cm.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})

	assert.EqualValues(t, 256, got.body["max_tokens"])
}

func TestBuildChatModel_RequiresModel(t *testing.T) {
	_, err := New().BuildChatModel(context.Background(), &entity.ConnInfo{}, nil)
	assert.Error(t, err)
}
