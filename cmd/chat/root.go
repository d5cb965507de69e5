package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/taingy-srun/portfolio/adapters/event"
	"github.com/taingy-srun/portfolio/adapters/persistence"
	chatUC "github.com/taingy-srun/portfolio/internal/application/usecase/chat"
	"github.com/taingy-srun/portfolio/internal/domain/conversation"
	"github.com/taingy-srun/portfolio/internal/domain/resume"
	"github.com/taingy-srun/portfolio/pkg/logger"
	"github.com/taingy-srun/portfolio/pkg/markup"
)

const app = "portfolio-chat"

var (
	resumeFile string
	replyDelay time.Duration
	plain      bool
	debug      bool

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Ask questions about the portfolio owner's résumé from the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return c.interactive(cmd.Context())
		},
	}

	askCmd = &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer one question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return c.ask(cmd.Context(), strings.Join(args, " "))
		},
	}

	suggestionsCmd = &cobra.Command{
		Use:   "suggestions",
		Short: "List the preset questions",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range conversation.Suggestions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", s.Label, s.Question)
			}
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&resumeFile, "resume", "", "YAML résumé file (default is the built-in résumé)")
	rootCmd.PersistentFlags().DurationVar(&replyDelay, "delay", 800*time.Millisecond, "typing delay before each answer")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colours")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")

	rootCmd.AddCommand(askCmd, suggestionsCmd)
}

type client struct {
	uc         *chatUC.ChatUseCase
	sessionID  string
	transcript *conversation.Transcript
	styles     markup.Styles
	out        io.Writer
}

func newClient(ctx context.Context, out io.Writer) (*client, error) {
	log := logger.NewNopLogger()
	if debug {
		log = logger.NewZapLogger("development")
	}

	var src resume.Source = resume.NewBuiltinSource()
	if resumeFile != "" {
		src = persistence.NewYAMLResumeSource(resumeFile, log)
	}
	record, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	styles := markup.DefaultStyles()
	if plain {
		styles = markup.PlainStyles()
	}

	uc := chatUC.NewChatUseCase(
		chatUC.NewResponder(record),
		persistence.NewMemorySessionGate(),
		event.NewNoopPublisher(),
		replyDelay,
		log,
	)
	return &client{
		uc:         uc,
		sessionID:  uuid.NewString(),
		transcript: conversation.NewTranscript(),
		styles:     styles,
		out:        out,
	}, nil
}

func (c *client) ask(ctx context.Context, question string) error {
	question, ok := conversation.NormalizeInput(question)
	if !ok {
		return nil
	}
	c.transcript.AppendUser(question)

	fmt.Fprint(c.out, "…typing")
	output, err := c.uc.Execute(ctx, chatUC.ChatInput{SessionID: c.sessionID, Query: question})
	fmt.Fprint(c.out, "\r\033[K")
	if err != nil {
		return err
	}

	entry := c.transcript.AppendBot(output.Response)
	fmt.Fprintln(c.out, markup.ToTerminal(entry.Text, c.styles))
	fmt.Fprintln(c.out)
	return nil
}

func (c *client) interactive(ctx context.Context) error {
	fmt.Fprintln(c.out, `Ask about experience, skills, education or contact. Type "exit" to quit.`)
	for {
		prompt := promptui.Prompt{Label: "You"}
		line, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			return nil
		}
		if err := c.ask(ctx, line); err != nil {
			return err
		}
	}
}
