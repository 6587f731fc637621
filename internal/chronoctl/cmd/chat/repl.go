package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/entity"
	"github.com/kiosk404/chronos/internal/engine/service/agents/domain/service/runtime"
	"github.com/kiosk404/chronos/pkg/logger"
	"github.com/kiosk404/chronos/pkg/version"
)

const promptText = "You: "

var (
	botLabel  = color.New(color.FgMagenta, color.Bold)
	errLabel  = color.New(color.FgRed, color.Bold)
	dimText   = color.New(color.Faint)
	titleText = color.New(color.FgHiYellow, color.Bold)
)

// isExitCommand reports whether line asks to leave the session.
func isExitCommand(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit", "/exit", "/quit":
		return true
	}
	return false
}

// session is one interactive conversation. The history only ever holds
// completed turns.
type session struct {
	id      string
	runner  Runner
	out     io.Writer
	timeout time.Duration
	render  bool

	history []entity.Message
}

func newSession(runner Runner, out io.Writer, timeout time.Duration, render bool) *session {
	return &session{
		id:      newSessionID(),
		runner:  runner,
		out:     out,
		timeout: timeout,
		render:  render,
	}
}

func (s *session) printWelcome(provider, model string) {
	fmt.Fprintln(s.out, titleText.Sprintf("Chronos %s", version.GitVersion))
	fmt.Fprintf(s.out, "  Model:   %s/%s\n", provider, model)
	fmt.Fprintf(s.out, "  Session: %s\n", s.id)
	fmt.Fprintln(s.out, dimText.Sprint("  /clear resets the conversation, /history prints it, exit or quit leaves."))
	fmt.Fprintln(s.out)
}

func (s *session) loop(ctx context.Context, rd lineReader) error {
	for {
		line, err := rd.ReadLine()
		if errors.Is(err, io.EOF) {
			s.goodbye()
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if isExitCommand(input) {
			s.goodbye()
			return nil
		}

		switch input {
		case "/clear":
			s.history = nil
			fmt.Fprintln(s.out, dimText.Sprint("Conversation cleared."))
			continue
		case "/history":
			s.printHistory()
			continue
		}

		if err := s.turn(ctx, input); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(s.out, "%s %v\n", errLabel.Sprint("Error:"), err)
		}
	}
}

// turn runs one user message through the agent. On failure the history is
// left exactly as it was before the message.
func (s *session) turn(ctx context.Context, input string) error {
	next := append(slices.Clone(s.history), entity.NewUserMessage(input))

	ctx, cancel := withTurnTimeout(ctx, s.timeout)
	defer cancel()

	msgs, err := s.runner.Run(ctx, entity.HistoryInput(next))
	if err != nil {
		logger.Warn("[Chat] session %s: turn failed: %v", s.id, err)
		return err
	}
	s.history = msgs

	reply, ok := runtime.LastReply(msgs)
	if !ok {
		return nil
	}
	if s.render {
		reply = renderMarkdown(reply, termWidth()-4)
	}
	fmt.Fprintf(s.out, "%s%s\n", botLabel.Sprint("Bot: "), reply)
	return nil
}

func (s *session) printHistory() {
	data, err := entity.MarshalTranscript(s.history)
	if err != nil {
		fmt.Fprintf(s.out, "%s %v\n", errLabel.Sprint("Error:"), err)
		return
	}
	fmt.Fprintln(s.out, string(data))
}

func (s *session) goodbye() {
	fmt.Fprintln(s.out, dimText.Sprint("Goodbye!"))
}
