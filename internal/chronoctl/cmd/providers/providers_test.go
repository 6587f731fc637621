package providers

import (
	"context"
	"testing"

	"github.com/kiosk404/chronos/internal/chronoctl/cmd/util"
	chronosoptions "github.com/kiosk404/chronos/internal/chronoctl/options"
	"github.com/kiosk404/chronos/internal/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders_Run(t *testing.T) {
	opts := chronosoptions.NewOptions()
	opts.Models.Providers["ollama"] = &options.ProviderConfig{BaseURL: "http://gpu-box:11434"}

	streams, _, out, _ := util.NewTestIOStreams()
	o := &ProvidersOptions{factory: util.NewFactory(opts), IOStreams: streams}

	require.NoError(t, o.Run(context.Background()))

	lines := out.String()
	assert.Contains(t, lines, "NAME")
	assert.Contains(t, lines, "openai (default)")
	assert.Contains(t, lines, "OPENAI_API_KEY")
	assert.Contains(t, lines, "http://gpu-box:11434")
	assert.Contains(t, lines, "claude-sonnet-4-5")
}
