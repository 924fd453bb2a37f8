package ui

import "github.com/pterm/pterm"

// TerminalPrompter reads operator input through pterm's interactive text
// input. Answers are returned as typed; callers decide how to trim and
// interpret them.
type TerminalPrompter struct{}

// Input shows the prompt and returns the submitted line
func (TerminalPrompter) Input(title string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText("").WithMultiLine(false).Show(title)
}
