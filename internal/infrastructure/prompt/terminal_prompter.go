// Package prompt asks the customer for their order on the terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/pizzeria/internal/application/ports"
	"golang.org/x/term"
)

// Ensure interface compliance
var (
	_ ports.OrderPrompter = (*TerminalPrompter)(nil)
	_ ports.OrderPrompter = (*LinePrompter)(nil)
)

// Question formats the question asked for menu.
func Question(menu string) string {
	return fmt.Sprintf("What pizza would you like? %s?", menu)
}

// IsInteractive checks if stdin is an interactive terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// TerminalPrompter asks for an order with an interactive huh input.
type TerminalPrompter struct {
	out io.Writer
}

// NewTerminalPrompter creates a new TerminalPrompter. Rejections are
// reported to out.
func NewTerminalPrompter(out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{out: out}
}

// Ask shows the menu and returns what the customer typed.
func (p *TerminalPrompter) Ask(ctx context.Context, menu string) (string, error) {
	var answer string
	input := huh.NewInput().
		Title(Question(menu)).
		Value(&answer)

	if err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx); err != nil {
		return "", err
	}
	return answer, nil
}

// Reject reports a choice that is not on the menu.
func (p *TerminalPrompter) Reject(token string, _ error) {
	fmt.Fprintln(p.out, rejection(token))
}

// LinePrompter reads one order per line, for piped input.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter that writes questions to out and
// reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the question and reads the next line. Running out of input
// before anything was typed returns io.EOF.
func (p *LinePrompter) Ask(ctx context.Context, menu string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "%s: ", Question(menu))
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Reject reports a choice that is not on the menu.
func (p *LinePrompter) Reject(token string, _ error) {
	fmt.Fprintln(p.out, rejection(token))
}

func rejection(token string) string {
	if strings.TrimSpace(token) == "" {
		return "Please choose a pizza from the menu."
	}
	return fmt.Sprintf("Sorry, we don't serve %q.", token)
}
