package chat

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/kiosk404/chronos/internal/chronoctl/cmd/util"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/service/runtime"
	"github.com/spf13/cobra"
)

var chatExample = heredoc.Doc(`
	# Interactive chat
	chronos chat

	# Single message mode
	chronos chat "What time is it?"

	# Use another provider and echo tool results
	chronos chat --provider=ollama --model=qwen3:8b --show-tools`)

// Runner executes one turn of the agent flow.
type Runner interface {
	Run(ctx context.Context, in entity.Input) ([]entity.Message, error)
}

type ChatOptions struct {
	Provider      string
	Model         string
	SystemPrompt  string
	MaxToolRounds int
	ShowTools     bool
	Render        bool
	Timeout       time.Duration

	factory util.Factory
	util.IOStreams
}

func NewCmdChat(f util.Factory, ioStreams util.IOStreams) *cobra.Command {
	o := NewChatOptions(f, ioStreams)

	cmd := &cobra.Command{
		Use:                   "chat [message]",
		DisableFlagsInUseLine: true,
		Short:                 "Talk to the time assistant",
		Long: heredoc.Doc(`
			Start a conversation with the assistant. It answers in plain text and
			calls the get_current_time tool whenever it needs the current UTC time.

			Without arguments an interactive session starts; type exit or quit, or
			press Ctrl+D, to leave it. With a message argument a single turn runs
			and the reply is printed.`),
		Example: chatExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Complete(cmd))
			util.CheckErr(o.Run(cmd.Context(), args))
		},
	}

	cmd.Flags().StringVar(&o.Provider, "provider", o.Provider, "Provider to use, overrides models.default-provider.")
	cmd.Flags().StringVar(&o.Model, "model", o.Model, "Model to use, overrides models.default-model.")
	cmd.Flags().StringVar(&o.SystemPrompt, "system-prompt", o.SystemPrompt, "System prompt, overrides agent.system-prompt.")
	cmd.Flags().IntVar(&o.MaxToolRounds, "max-tool-rounds", o.MaxToolRounds, "Tool round limit per turn, overrides agent.max-tool-rounds.")
	cmd.Flags().BoolVar(&o.ShowTools, "show-tools", o.ShowTools, "Print every tool result as it is produced.")
	cmd.Flags().BoolVar(&o.Render, "render", o.Render, "Render replies as markdown.")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", o.Timeout, "Time limit for one turn, 0 means none.")

	return cmd
}

func NewChatOptions(f util.Factory, ioStreams util.IOStreams) *ChatOptions {
	return &ChatOptions{
		factory:   f,
		IOStreams: ioStreams,
	}
}

// Complete copies the chat flags the user set onto the shared options.
func (o *ChatOptions) Complete(cmd *cobra.Command) error {
	opts := o.factory.Options()
	flags := cmd.Flags()

	if flags.Changed("provider") {
		opts.Models.DefaultProvider = o.Provider
		if !flags.Changed("model") {
			// The configured model belongs to another provider; let the
			// provider pick its first model.
			opts.Models.DefaultModel = ""
		}
	}
	if flags.Changed("model") {
		opts.Models.DefaultModel = o.Model
	}
	if flags.Changed("system-prompt") {
		opts.Agent.SystemPrompt = o.SystemPrompt
	}
	if flags.Changed("max-tool-rounds") {
		if o.MaxToolRounds < 1 {
			return fmt.Errorf("--max-tool-rounds must be at least 1, got %d", o.MaxToolRounds)
		}
		opts.Agent.MaxToolRounds = o.MaxToolRounds
	}
	if o.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}
	return nil
}

func (o *ChatOptions) Run(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var trace io.Writer
	if o.ShowTools {
		trace = o.Out
	}
	runner, err := o.factory.TurnRunner(ctx, trace)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return o.RunOnce(ctx, runner, strings.Join(args, " "))
	}

	rd, err := newReadlineReader(promptText)
	if err != nil {
		return err
	}
	defer rd.Close()

	s := newSession(runner, o.Out, o.Timeout, o.Render)
	s.printWelcome(o.factory.Options().Models.DefaultProvider, o.factory.Options().Models.DefaultModel)
	return s.loop(ctx, rd)
}

// RunOnce runs a single turn for message and prints the reply.
func (o *ChatOptions) RunOnce(ctx context.Context, runner Runner, message string) error {
	ctx, cancel := withTurnTimeout(ctx, o.Timeout)
	defer cancel()

	msgs, err := runner.Run(ctx, entity.TextInput(message))
	if err != nil {
		return err
	}
	reply, ok := runtime.LastReply(msgs)
	if !ok {
		return nil
	}
	if o.Render {
		reply = renderMarkdown(reply, termWidth()-4)
	}
	fmt.Fprintln(o.Out, reply)
	return nil
}

func withTurnTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

func newSessionID() string {
	return "chronos-" + uuid.NewString()[:8]
}
