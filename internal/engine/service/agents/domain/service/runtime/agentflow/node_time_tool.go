package agentflow

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/pkg/utils/json"
)

const (
	TimeToolName = "get_current_time"
	TimeToolDesc = "Получить текущее время в формате UTC ISO-8601"

	// utcLayout is ISO-8601 with second precision and a literal Z.
	utcLayout = "2006-01-02T15:04:05Z"
)

// TimeTool reports the current UTC time as {"utc": "..."}.
type TimeTool struct {
	now func() time.Time
}

var _ tool.InvokableTool = (*TimeTool)(nil)

// NewTimeTool returns the tool reading from now, or from the system clock
// when now is nil.
func NewTimeTool(now func() time.Time) *TimeTool {
	if now == nil {
		now = time.Now
	}
	return &TimeTool{now: now}
}

// Info declares the tool with an empty parameter object.
func (t *TimeTool) Info(_ context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name:        TimeToolName,
		Desc:        TimeToolDesc,
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
	}, nil
}

// InvokableRun ignores its arguments.
func (t *TimeTool) InvokableRun(_ context.Context, _ string, _ ...tool.Option) (string, error) {
	out, err := json.MarshalString(entity.TimeResult{UTC: FormatUTC(t.now())})
	if err != nil {
		return "", fmt.Errorf("failed to marshal time result: %w", err)
	}
	return out, nil
}

// FormatUTC renders ts in UTC, truncated to whole seconds, e.g. 2024-01-01T00:00:00Z.
func FormatUTC(ts time.Time) string {
	return ts.UTC().Truncate(time.Second).Format(utcLayout)
}
