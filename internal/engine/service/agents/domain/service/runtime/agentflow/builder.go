package agentflow

import (
	"context"
	"fmt"
	"time"

	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg/errno"
	"github.com/kiosk404/chronos/pkg/logger"
)

const (
	NodeKeyInput     = "input"
	NodeKeyAssistant = "assistant"
	NodeKeyTool      = TimeToolName

	graphName = "chronos_time_agent"
)

// BuildConfig holds everything the flow needs; it is read once at build time.
type BuildConfig struct {
	ChatModel     einoModel.BaseChatModel
	SystemPrompt  string
	MaxToolRounds int

	// Clock feeds the time tool. Nil means the system clock.
	Clock func() time.Time
}

// AgentFlowBuilder constructs the Eino execution graph of one turn:
//
//	START -> input -> assistant -(branch)-> get_current_time -> assistant ...
//	                            \-(branch)-> END
//
// The resulting Runnable takes an entity.Input and returns the conversation
// after the turn ends.
type AgentFlowBuilder struct{}

func NewAgentFlowBuilder() *AgentFlowBuilder {
	return &AgentFlowBuilder{}
}

// Build binds the time tool to the chat model and compiles the graph.
func (b *AgentFlowBuilder) Build(ctx context.Context, cfg BuildConfig) (compose.Runnable[entity.Input, *entity.Conversation], error) {
	if cfg.MaxToolRounds <= 0 {
		return nil, fmt.Errorf("max tool rounds must be positive, got %d", cfg.MaxToolRounds)
	}

	tcm, ok := cfg.ChatModel.(einoModel.ToolCallingChatModel)
	if !ok {
		return nil, errno.ErrModelNotToolCapable
	}

	timeTool := NewTimeTool(cfg.Clock)
	toolInfo, err := timeTool.Info(ctx)
	if err != nil {
		return nil, err
	}
	bound, err := tcm.WithTools([]*schema.ToolInfo{toolInfo})
	if err != nil {
		return nil, fmt.Errorf("failed to bind tools to chat model: %w", err)
	}

	assistant := NewAssistantStep(AssistantConfig{
		ChatModel:    bound,
		SystemPrompt: cfg.SystemPrompt,
	})
	executor, err := NewToolExecutor(ctx, timeTool)
	if err != nil {
		return nil, err
	}

	g := compose.NewGraph[entity.Input, *entity.Conversation]()

	if err = g.AddLambdaNode(NodeKeyInput, compose.InvokableLambda(inputNode),
		compose.WithNodeName(NodeKeyInput)); err != nil {
		return nil, fmt.Errorf("failed to add input node: %w", err)
	}
	if err = g.AddLambdaNode(NodeKeyAssistant, compose.InvokableLambda(assistant.Run),
		compose.WithNodeName(NodeKeyAssistant)); err != nil {
		return nil, fmt.Errorf("failed to add assistant node: %w", err)
	}
	if err = g.AddLambdaNode(NodeKeyTool, compose.InvokableLambda(executor.Run),
		compose.WithNodeName(NodeKeyTool)); err != nil {
		return nil, fmt.Errorf("failed to add tool node: %w", err)
	}

	if err = g.AddEdge(compose.START, NodeKeyInput); err != nil {
		return nil, err
	}
	if err = g.AddEdge(NodeKeyInput, NodeKeyAssistant); err != nil {
		return nil, err
	}
	if err = g.AddBranch(NodeKeyAssistant, newRouteBranch(cfg.MaxToolRounds)); err != nil {
		return nil, fmt.Errorf("failed to add router branch: %w", err)
	}
	if err = g.AddEdge(NodeKeyTool, NodeKeyAssistant); err != nil {
		return nil, err
	}

	runnable, err := g.Compile(ctx,
		compose.WithGraphName(graphName),
		compose.WithNodeTriggerMode(compose.AnyPredecessor),
		compose.WithMaxRunSteps(maxRunSteps(cfg.MaxToolRounds)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile agent flow: %w", err)
	}

	logger.InfoX(pkg.ModuleName, "[AgentFlow] built %s with tool %q, max_tool_rounds=%d",
		graphName, toolInfo.Name, cfg.MaxToolRounds)
	return runnable, nil
}

// maxRunSteps is the Eino step budget: input, the first assistant step, two
// nodes per tool round, plus slack for END.
func maxRunSteps(maxToolRounds int) int {
	return 2*(maxToolRounds+1) + 4
}
