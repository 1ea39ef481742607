// Package agent runs an interactive chat session grounded on the analysis
// reports, so the user can ask questions about their own numbers.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for the assist session.
const DefaultModel = "gemini-2.5-flash"

const instructions = `You are a personal finance assistant. The user shares
their portfolio dashboard reports below: performance, risk, calendar returns,
benchmark relations. Answer questions about these numbers only, plainly and
briefly. You do not give investment advice and you do not predict markets.`

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w     io.Writer
	r     *bufio.Reader
	model string
	chat  *genai.Chat
}

// New creates a new Agent writing its output to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), model: DefaultModel}
}

// Start creates the chat session, seeded with the reports the conversation
// is about.
func (a *Agent) Start(ctx context.Context, client *genai.Client, reports string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instructions + "\n\n" + reports}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.model, config, nil)
	if err != nil {
		return fmt.Errorf("starting assist session: %w", err)
	}
	a.chat = chat
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Extra prompts are
// flushed before reading the user, which makes one-shot questions scriptable.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	if a.chat == nil {
		return fmt.Errorf("assist session not started")
	}

	fmt.Fprintln(a.w, "Welcome to fundwatch assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		resp, err := a.chat.Send(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			fmt.Fprintln(a.w, "(no answer)")
			continue
		}
		fmt.Fprintln(a.w, resp.Candidates[0].Content.Parts[0].Text)
	}
}
