// Package console implements the interactive prompt surface with huh forms.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/redlinehq/redline/internal/editor"
)

// Prompter collects workflow input from the terminal.
type Prompter struct{}

// NewPrompter returns the huh-backed Prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Path asks for the input document path.
func (p *Prompter) Path() (string, error) {
	var path string
	err := huh.NewInput().
		Title("Document to edit").
		Description("Path to a .txt, .docx, or .pdf file").
		Value(&path).
		Run()
	return strings.TrimSpace(path), err
}

// Menu asks for the next action. The select widget makes invalid choices
// unrepresentable; the menu numbering mirrors the classic prompt.
func (p *Prompter) Menu() (editor.MenuChoice, error) {
	choice := editor.MenuRewrite
	err := huh.NewSelect[editor.MenuChoice]().
		Title("What would you like to do?").
		Options(
			huh.NewOption("0 - Rewrite a portion or phrase", editor.MenuRewrite),
			huh.NewOption("1 - Rephrase a portion or phrase", editor.MenuRephrase),
			huh.NewOption("2 - Write for me (expand on portion or phrase)", editor.MenuExpand),
			huh.NewOption("3 - Show full document", editor.MenuShow),
			huh.NewOption("4 - Save and exit", editor.MenuSave),
		).
		Value(&choice).
		Run()
	return choice, err
}

// Selector asks for a passage selector: a pasted excerpt or a line range.
func (p *Prompter) Selector() (string, error) {
	var selector string
	err := huh.NewText().
		Title("Select the passage you want to edit").
		Description("Paste the exact text, or type line numbers (e.g. '5-8' for lines 5 through 8)").
		Value(&selector).
		Run()
	return selector, err
}

// Decision asks whether to accept the proposed revision. Input loops until a
// recognized case-insensitive y/yes/n/no is given.
func (p *Prompter) Decision() (editor.Decision, error) {
	var answer string
	err := huh.NewInput().
		Title("Do you want to accept this revision? (y/n)").
		Validate(func(s string) error {
			if _, ok := parseDecision(s); !ok {
				return fmt.Errorf("please enter 'y' for yes or 'n' for no")
			}
			return nil
		}).
		Value(&answer).
		Run()
	if err != nil {
		return editor.DecisionReject, err
	}

	decision, _ := parseDecision(answer)
	return decision, nil
}

// Feedback asks what to change about a rejected revision.
func (p *Prompter) Feedback() (string, error) {
	var feedback string
	err := huh.NewText().
		Title("What would you like me to change?").
		Description("e.g. 'make it simpler', 'more formal', 'shorter', 'add more examples'").
		Value(&feedback).
		Run()
	return strings.TrimSpace(feedback), err
}

func parseDecision(s string) (editor.Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return editor.DecisionAccept, true
	case "n", "no":
		return editor.DecisionReject, true
	default:
		return editor.DecisionReject, false
	}
}
