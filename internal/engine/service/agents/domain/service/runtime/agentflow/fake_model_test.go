package agentflow

import (
	"context"
	"errors"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fakeChatModel replays scripted replies and records every request.
type fakeChatModel struct {
	replies []*schema.Message
	err     error

	requests    [][]*schema.Message
	toolChoices []*schema.ToolChoice
	tools       []*schema.ToolInfo
}

var _ einoModel.ToolCallingChatModel = (*fakeChatModel)(nil)

func newFakeChatModel(replies ...*schema.Message) *fakeChatModel {
	return &fakeChatModel{replies: replies}
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...einoModel.Option) (*schema.Message, error) {
	f.requests = append(f.requests, append([]*schema.Message(nil), input...))
	f.toolChoices = append(f.toolChoices, einoModel.GetCommonOptions(nil, opts...).ToolChoice)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, errors.New("fake model: no scripted reply left")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einoModel.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func (f *fakeChatModel) WithTools(tools []*schema.ToolInfo) (einoModel.ToolCallingChatModel, error) {
	f.tools = tools
	return f, nil
}

// plainChatModel cannot take tools.
type plainChatModel struct{}

func (plainChatModel) Generate(context.Context, []*schema.Message, ...einoModel.Option) (*schema.Message, error) {
	return schema.AssistantMessage("hi", nil), nil
}

func (plainChatModel) Stream(context.Context, []*schema.Message, ...einoModel.Option) (*schema.StreamReader[*schema.Message], error) {
	return schema.StreamReaderFromArray([]*schema.Message{schema.AssistantMessage("hi", nil)}), nil
}

func toolCallReply(ids ...string) *schema.Message {
	calls := make([]schema.ToolCall, 0, len(ids))
	for _, id := range ids {
		calls = append(calls, schema.ToolCall{
			ID:       id,
			Type:     "function",
			Function: schema.FunctionCall{Name: TimeToolName, Arguments: "{}"},
		})
	}
	return schema.AssistantMessage("", calls)
}
