package cmd

import (
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/kiosk404/chronos/internal/chronoctl/cmd/chat"
	"github.com/kiosk404/chronos/internal/chronoctl/cmd/providers"
	cmdutil "github.com/kiosk404/chronos/internal/chronoctl/cmd/util"
	chronosoptions "github.com/kiosk404/chronos/internal/chronoctl/options"
	"github.com/kiosk404/chronos/internal/pkg/options"
	"github.com/kiosk404/chronos/pkg/logger"
	"github.com/kiosk404/chronos/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName = "chronos"

	flagConfig = "config"
)

// NewDefaultChronosCommand creates the `chronos` command with default arguments.
func NewDefaultChronosCommand() *cobra.Command {
	return NewChronosCommand(os.Stdin, os.Stdout, os.Stderr)
}

func NewChronosCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := chronosoptions.NewOptions()
	v := viper.New()
	var cfgFile string

	// Parent command to which all subcommands are added.
	cmds := &cobra.Command{
		Use:   appName,
		Short: "chronos is a chat assistant that can tell the current UTC time",
		Long: heredoc.Docf(`%s
			chronos runs a language model in a small agent loop. The model may call
			a single tool, get_current_time, before it answers.

			Configuration is read from --config, or from chronos.yaml in the working
			directory or in $HOME/.chronos. $OPENAI_MODEL selects the model.`, Banner()),
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: false,
		Run:           runHelp,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadOptions(v, cfgFile, opts, errOut)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.FlushLog()
		},
	}
	cmds.SetIn(in)
	cmds.SetOut(out)
	cmds.SetErr(errOut)

	flags := cmds.PersistentFlags()
	flags.StringVarP(&cfgFile, flagConfig, "c", "", "Path to the chronos config file (yaml or json).")
	opts.AddFlags(flags)
	_ = v.BindPFlags(flags)

	ioStreams := cmdutil.IOStreams{In: in, Out: out, ErrOut: errOut}
	f := cmdutil.NewFactory(opts)

	cmds.AddCommand(chat.NewCmdChat(f, ioStreams))
	cmds.AddCommand(providers.NewCmdProviders(f, ioStreams))

	return cmds
}

// loadOptions layers flags, environment and config file into opts, then
// validates them and sets up logging.
func loadOptions(v *viper.Viper, cfgFile string, opts *chronosoptions.Options, logOut io.Writer) error {
	if err := options.LoadConfig(v, cfgFile, appName); err != nil {
		return err
	}
	if err := v.Unmarshal(opts); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := opts.Complete(logOut); err != nil {
		return err
	}
	logger.Debug("[Chronos] options: %s", opts)
	return nil
}

func runHelp(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}
