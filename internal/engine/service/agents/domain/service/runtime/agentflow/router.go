package agentflow

import (
	"context"

	"github.com/cloudwego/eino/compose"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg"
	"github.com/kiosk404/chronos/pkg/logger"
)

// Route is the router's decision after an assistant step.
type Route string

const (
	RouteToTool Route = "route_to_tool"
	RouteEnd    Route = "end"
)

// NextRoute returns RouteToTool iff the last message is an assistant message
// with at least one tool call.
func NextRoute(msgs []entity.Message) Route {
	if len(msgs) == 0 {
		return RouteEnd
	}
	if last, ok := msgs[len(msgs)-1].(entity.AssistantMessage); ok && last.HasToolCalls() {
		return RouteToTool
	}
	return RouteEnd
}

// newRouteBranch maps the router decision onto graph nodes. Once maxToolRounds
// tool rounds have run, a further tool request ends the turn and marks the
// conversation exhausted.
func newRouteBranch(maxToolRounds int) *compose.GraphBranch {
	return compose.NewGraphBranch(func(_ context.Context, conv *entity.Conversation) (string, error) {
		if NextRoute(conv.Messages) == RouteEnd {
			return compose.END, nil
		}
		if conv.ToolRounds >= maxToolRounds {
			conv.Exhausted = true
			logger.WarnX(pkg.ModuleName, "[AgentFlow/Router] tool round limit %d reached, ending turn", maxToolRounds)
			return compose.END, nil
		}
		return NodeKeyTool, nil
	}, map[string]bool{
		NodeKeyTool: true,
		compose.END: true,
	})
}
