package providers

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gosuri/uitable"
	"github.com/kiosk404/chronos/internal/chronoctl/cmd/util"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/helper"
	"github.com/spf13/cobra"
)

type ProvidersOptions struct {
	factory util.Factory
	util.IOStreams
}

func NewCmdProviders(f util.Factory, ioStreams util.IOStreams) *cobra.Command {
	o := &ProvidersOptions{factory: f, IOStreams: ioStreams}

	cmd := &cobra.Command{
		Use:                   "providers",
		DisableFlagsInUseLine: true,
		Short:                 "List the model providers chronos can talk to",
		Long: heredoc.Doc(`
			List every built-in model provider with its effective base URL, the
			environment variable holding its API key and its first model.

			Values from the config file are already applied.`),
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Run(cmd.Context()))
		},
	}
	return cmd
}

func (o *ProvidersOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m, err := o.factory.LLM()
	if err != nil {
		return err
	}
	infos, err := m.Manager.ListProviders(ctx)
	if err != nil {
		return err
	}

	defaultProvider := o.factory.Options().Models.DefaultProvider

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("NAME", "BASE URL", "API KEY ENV", "DEFAULT MODEL")
	for _, info := range infos {
		name := info.Name
		if name == defaultProvider {
			name += " (default)"
		}
		keyEnv := helper.EnvKeyName(info.Config.APIKey)
		if keyEnv == "" {
			keyEnv = "-"
		}
		model := "-"
		if len(info.Config.Models) > 0 {
			model = info.Config.Models[0].ID
		}
		table.AddRow(name, info.Config.BaseURL, keyEnv, model)
	}
	_, err = fmt.Fprintln(o.Out, table)
	return err
}
